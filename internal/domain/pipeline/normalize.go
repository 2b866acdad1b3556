package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
)

// Layouts aceitos para a coluna de data. Os exports do sistema de billing não
// são consistentes entre si, então tentamos os formatos conhecidos em ordem.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"2006/01/02",
	"02-Jan-2006",
	time.RFC3339,
}

// Normalize validates the table schema against the variant's required columns
// and reduces the raw rows to qualifying appointment records with a parsed
// date, a derived month key and the work quantity resolved into hours.
//
// Row handling is deliberately lenient: rows whose completion flag is not
// "yes" (case and surrounding whitespace ignored) or whose date cannot be
// parsed are silently dropped, and a non-numeric quantity resolves to 0 hours
// instead of dropping the row. A missing required column, by contrast, is a
// schema problem and fails the whole batch with *types.SchemaError before any
// row is touched.
func Normalize(table *entity.Table, cfg VariantConfig) ([]entity.AppointmentRecord, error) {
	if missing := table.MissingColumns(cfg.requiredColumns()); len(missing) > 0 {
		return nil, &types.SchemaError{MissingColumns: missing}
	}

	factor := cfg.factor()
	records := make([]entity.AppointmentRecord, 0, len(table.Rows))

	for _, row := range table.Rows {
		completed := strings.ToLower(strings.TrimSpace(row[cfg.CompletedColumn]))
		if completed != "yes" {
			continue
		}

		if cfg.RequiredCategory != "" {
			if strings.TrimSpace(row[cfg.CategoryColumn]) != cfg.RequiredCategory {
				continue
			}
		}

		date, ok := parseDate(row[cfg.DateColumn])
		if !ok {
			// Tolerância de qualidade de dados: linha descartada em silêncio.
			continue
		}

		records = append(records, entity.AppointmentRecord{
			Staff:    row[cfg.StaffColumn],
			Date:     date,
			MonthKey: MonthKeyOf(date),
			Hours:    resolveHours(row[cfg.QuantityColumn], factor),
		})
	}

	return records, nil
}

// MonthKeyOf derives the YYYY-MM bucket for a date. Lexicographic order of
// month keys matches chronological order.
func MonthKeyOf(date time.Time) string {
	return date.Format("2006-01")
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// resolveHours converte a quantidade bruta em horas. Valores não numéricos ou
// vazios viram 0 em vez de descartar a linha.
func resolveHours(raw string, factor float64) float64 {
	quantity, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return quantity / factor
}
