package pipeline

import (
	"sort"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

// Aggregate groups qualifying records by (staff, month key) and sums their
// hours. Each group accumulates in input order, so identical input yields an
// identical float result; the output slice is sorted by staff then month so
// downstream consumers never depend on map iteration order.
func Aggregate(records []entity.AppointmentRecord) []entity.MonthlyTotal {
	type key struct {
		staff string
		month string
	}

	sums := make(map[key]float64)
	for _, rec := range records {
		sums[key{rec.Staff, rec.MonthKey}] += rec.Hours
	}

	totals := make([]entity.MonthlyTotal, 0, len(sums))
	for k, hours := range sums {
		totals = append(totals, entity.MonthlyTotal{
			Staff:    k.staff,
			MonthKey: k.month,
			Hours:    hours,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Staff != totals[j].Staff {
			return totals[i].Staff < totals[j].Staff
		}
		return totals[i].MonthKey < totals[j].MonthKey
	})

	return totals
}

// Months returns the distinct month keys present in the totals, ascending.
// This is the discoverable month set offered at the selection boundary.
func Months(totals []entity.MonthlyTotal) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, t := range totals {
		if _, ok := seen[t.MonthKey]; !ok {
			seen[t.MonthKey] = struct{}{}
			months = append(months, t.MonthKey)
		}
	}
	sort.Strings(months)
	return months
}
