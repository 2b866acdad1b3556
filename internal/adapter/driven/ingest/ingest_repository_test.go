package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
)

func TestLoadTableCSV(t *testing.T) {
	repo := NewBillingRepository()

	t.Run("parses header and rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "billing.csv")
		data := "Staff Name,Appt. Date,Billing Hours,Completed\n" +
			"Alice,2025-10-01,2.5,yes\n" +
			"Bob,2025-10-02,3,no\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		table, err := repo.LoadTable(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Staff Name", "Appt. Date", "Billing Hours", "Completed"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Alice", table.Rows[0]["Staff Name"])
		assert.Equal(t, "2.5", table.Rows[0]["Billing Hours"])
		assert.Equal(t, "no", table.Rows[1]["Completed"])
	})

	t.Run("short rows fill missing cells with empty strings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ragged.csv")
		data := "Staff Name,Appt. Date,Billing Hours,Completed\n" +
			"Alice,2025-10-01\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		table, err := repo.LoadTable(path)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "", table.Rows[0]["Completed"])
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := repo.LoadTable(path)
		assert.ErrorIs(t, err, types.ErrEmptyBillingFile)
	})
}

func TestLoadTableXLSX(t *testing.T) {
	repo := NewBillingRepository()

	path := filepath.Join(t.TempDir(), "billing.xlsx")
	file := excelize.NewFile()
	require.NoError(t, file.SetSheetRow("Sheet1", "A1", &[]interface{}{"Staff Name", "Appt. Date", "Billing Hours", "Completed"}))
	require.NoError(t, file.SetSheetRow("Sheet1", "A2", &[]interface{}{"Alice", "2025-10-01", 2.5, "yes"}))
	require.NoError(t, file.SaveAs(path))
	require.NoError(t, file.Close())

	table, err := repo.LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Staff Name", "Appt. Date", "Billing Hours", "Completed"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Alice", table.Rows[0]["Staff Name"])
	assert.Equal(t, "yes", table.Rows[0]["Completed"])
}

func TestLoadTableUnsupportedFormat(t *testing.T) {
	repo := NewBillingRepository()

	_, err := repo.LoadTable("billing.txt")
	assert.ErrorIs(t, err, types.ErrUnsupportedFileFormat)
}

func TestLoadTableMissingFile(t *testing.T) {
	repo := NewBillingRepository()

	_, err := repo.LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
