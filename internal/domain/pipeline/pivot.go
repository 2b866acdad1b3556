package pipeline

import (
	"sort"

	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
	"github.com/clinicops/bt-fulltime-monitor-go/internal/shared/types"
)

// Pivot reshapes the long-format monthly totals into one row per staff member
// with one column per selected month, ascending chronologically. Exactly 3
// distinct month keys must be selected; any other cardinality fails with
// *types.SelectionError and no partial output.
//
// Completeness invariant: every staff member with a total in ANY selected
// month appears exactly once, and months without qualifying hours hold an
// explicit 0 rather than a missing cell.
func Pivot(totals []entity.MonthlyTotal, selectedMonths []string) (*entity.PivotTable, error) {
	months, err := normalizeSelection(selectedMonths)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]int, len(months))
	for i, m := range months {
		selected[m] = i
	}

	byStaff := make(map[string][]float64)
	var staffOrder []string
	for _, t := range totals {
		idx, ok := selected[t.MonthKey]
		if !ok {
			continue
		}
		cells, seen := byStaff[t.Staff]
		if !seen {
			cells = make([]float64, len(months))
			staffOrder = append(staffOrder, t.Staff)
		}
		cells[idx] += t.Hours
		byStaff[t.Staff] = cells
	}

	sort.Strings(staffOrder)

	table := &entity.PivotTable{Months: months, Rows: make([]entity.PivotedRow, 0, len(staffOrder))}
	for _, staff := range staffOrder {
		table.Rows = append(table.Rows, entity.PivotedRow{Staff: staff, Hours: byStaff[staff]})
	}

	return table, nil
}

// normalizeSelection deduplicates and sorts the selected month keys, rejecting
// any cardinality other than 3.
func normalizeSelection(selectedMonths []string) ([]string, error) {
	seen := make(map[string]struct{}, len(selectedMonths))
	months := make([]string, 0, len(selectedMonths))
	for _, m := range selectedMonths {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}

	if len(months) != 3 {
		return nil, &types.SelectionError{Count: len(months)}
	}

	sort.Strings(months)
	return months, nil
}
