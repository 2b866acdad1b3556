package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

func sampleReport() *entity.ClassificationReport {
	return &entity.ClassificationReport{
		StaffHeader: "Staff Name",
		Months:      []string{"2025-10", "2025-11", "2025-12"},
		Threshold:   130,
		Pass: []entity.ClassifiedRow{
			{
				PivotedRow: entity.PivotedRow{Staff: "Alice", Hours: []float64{131, 140.5, 150}},
				Status:     entity.StatusPass,
			},
		},
		NoPass: []entity.ClassifiedRow{
			{
				PivotedRow: entity.PivotedRow{Staff: "Bob", Hours: []float64{135, 135, 0}},
				Status:     entity.StatusNoPass,
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToCSV(sampleReport(), "fulltime", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// Header plus the PASS partition only (the NO PASS sheet is XLSX-only).
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Staff Name", "2025-10", "2025-11", "2025-12", "Status"}, records[0])
	assert.Equal(t, []string{"Alice", "131.00", "140.50", "150.00", "PASS"}, records[1])
}

func TestExportToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToJSON(sampleReport(), "fulltime", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ClassificationReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12"}, decoded.Months)
	require.Len(t, decoded.Pass, 1)
	require.Len(t, decoded.NoPass, 1)
	assert.Equal(t, "Bob", decoded.NoPass[0].Staff)
}

func TestExportToXLSX(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToXLSX(sampleReport(), "fulltime", dir)
	require.NoError(t, err)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"PASS", "NO PASS"}, file.GetSheetList())

	passRows, err := file.GetRows("PASS")
	require.NoError(t, err)
	require.Len(t, passRows, 2)
	assert.Equal(t, []string{"Staff Name", "2025-10", "2025-11", "2025-12", "Status"}, passRows[0])
	assert.Equal(t, "Alice", passRows[1][0])

	noPassRows, err := file.GetRows("NO PASS")
	require.NoError(t, err)
	require.Len(t, noPassRows, 2)
	assert.Equal(t, "Bob", noPassRows[1][0])
}

func TestExportToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToPDF(sampleReport(), "fulltime", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "PASS", cleanRichTags("[green]PASS[/green]"))
	assert.Equal(t, "Alice", cleanRichTags("\x1B[35mAlice\x1B[0m"))
}
