package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
)

// hoursTable builds a table in the hours-variant layout.
func hoursTable(rows ...map[string]string) *entity.Table {
	return &entity.Table{
		Columns: []string{DefaultStaffColumn, DefaultDateColumn, DefaultHoursColumn, DefaultCompletedColumn},
		Rows:    rows,
	}
}

func hoursRow(staff, date, hours, completed string) map[string]string {
	return map[string]string{
		DefaultStaffColumn:     staff,
		DefaultDateColumn:      date,
		DefaultHoursColumn:     hours,
		DefaultCompletedColumn: completed,
	}
}

func TestNormalizeSchemaCheck(t *testing.T) {
	t.Run("missing columns fail fast", func(t *testing.T) {
		table := &entity.Table{
			Columns: []string{DefaultStaffColumn, DefaultCompletedColumn},
			Rows:    []map[string]string{hoursRow("Alice", "2025-10-01", "2", "yes")},
		}

		records, err := Normalize(table, HoursVariant())
		require.Error(t, err)
		assert.Nil(t, records)

		var schemaErr *types.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{DefaultDateColumn, DefaultHoursColumn}, schemaErr.MissingColumns)
	})

	t.Run("category column only required for strict variant", func(t *testing.T) {
		table := &entity.Table{
			Columns: []string{DefaultStaffColumn, DefaultDateColumn, DefaultUnitsColumn, DefaultCompletedColumn},
		}

		_, err := Normalize(table, UnitsVariant(""))
		assert.NoError(t, err)

		_, err = Normalize(table, UnitsVariant("97153"))
		var schemaErr *types.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{DefaultCategoryColumn}, schemaErr.MissingColumns)
	})
}

func TestNormalizeCompletionFilter(t *testing.T) {
	table := hoursTable(
		hoursRow("Alice", "2025-10-01", "2", "yes"),
		hoursRow("Bob", "2025-10-01", "2", " YES "),
		hoursRow("Carol", "2025-10-01", "2", "Yes"),
		hoursRow("Dave", "2025-10-01", "2", "no"),
		hoursRow("Erin", "2025-10-01", "2", ""),
	)

	records, err := Normalize(table, HoursVariant())
	require.NoError(t, err)

	var staff []string
	for _, rec := range records {
		staff = append(staff, rec.Staff)
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, staff)
}

func TestNormalizeLeniency(t *testing.T) {
	t.Run("unparseable date drops the row silently", func(t *testing.T) {
		table := hoursTable(
			hoursRow("Alice", "not-a-date", "2", "yes"),
			hoursRow("Alice", "", "2", "yes"),
			hoursRow("Bob", "2025-10-15", "2", "yes"),
		)

		records, err := Normalize(table, HoursVariant())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Bob", records[0].Staff)
	})

	t.Run("non-numeric quantity resolves to zero, row kept", func(t *testing.T) {
		table := hoursTable(
			hoursRow("Alice", "2025-10-01", "n/a", "yes"),
			hoursRow("Alice", "2025-10-02", "", "yes"),
		)

		records, err := Normalize(table, HoursVariant())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Zero(t, records[0].Hours)
		assert.Zero(t, records[1].Hours)
	})
}

func TestNormalizeDateFormats(t *testing.T) {
	table := hoursTable(
		hoursRow("Alice", "2025-10-01", "1", "yes"),
		hoursRow("Alice", "10/02/2025", "1", "yes"),
		hoursRow("Alice", "2025-10-03 14:30:00", "1", "yes"),
	)

	records, err := Normalize(table, HoursVariant())
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, "2025-10", rec.MonthKey)
	}
}

func TestNormalizeMonthKeyPadding(t *testing.T) {
	table := hoursTable(hoursRow("Alice", "2025-03-09", "1", "yes"))

	records, err := Normalize(table, HoursVariant())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-03", records[0].MonthKey)
}

func TestNormalizeUnitsConversion(t *testing.T) {
	table := &entity.Table{
		Columns: []string{DefaultStaffColumn, DefaultDateColumn, DefaultUnitsColumn, DefaultCompletedColumn, DefaultCategoryColumn},
		Rows: []map[string]string{
			{
				DefaultStaffColumn:     "Alice",
				DefaultDateColumn:      "2025-10-01",
				DefaultUnitsColumn:     "520",
				DefaultCompletedColumn: "yes",
				DefaultCategoryColumn:  "97153",
			},
		},
	}

	records, err := Normalize(table, UnitsVariant("97153"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	// 520 units of 15 minutes = exactly 130 hours
	assert.Equal(t, 130.0, records[0].Hours)
}

func TestNormalizeCategoryFilter(t *testing.T) {
	row := func(staff, category string) map[string]string {
		return map[string]string{
			DefaultStaffColumn:     staff,
			DefaultDateColumn:      "2025-10-01",
			DefaultUnitsColumn:     "4",
			DefaultCompletedColumn: "yes",
			DefaultCategoryColumn:  category,
		}
	}
	table := &entity.Table{
		Columns: []string{DefaultStaffColumn, DefaultDateColumn, DefaultUnitsColumn, DefaultCompletedColumn, DefaultCategoryColumn},
		Rows: []map[string]string{
			row("Alice", "97153"),
			row("Bob", " 97153 "), // trimmed before matching
			row("Carol", "97155"),
			row("Dave", ""),
		},
	}

	records, err := Normalize(table, UnitsVariant("97153"))
	require.NoError(t, err)

	var staff []string
	for _, rec := range records {
		staff = append(staff, rec.Staff)
	}
	assert.Equal(t, []string{"Alice", "Bob"}, staff)
}

func TestNormalizeKeepsDuplicateRows(t *testing.T) {
	// Multiple qualifying rows for the same staff/month are expected and
	// summed downstream, never deduplicated here.
	table := hoursTable(
		hoursRow("Alice", "2025-10-01", "2", "yes"),
		hoursRow("Alice", "2025-10-01", "2", "yes"),
	)

	records, err := Normalize(table, HoursVariant())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
