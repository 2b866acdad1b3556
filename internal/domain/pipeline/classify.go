package pipeline

import (
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

// Classify partitions the pivoted rows into PASS and NO PASS. A staff member
// passes iff the hours of ALL three selected months strictly exceed the
// threshold; exactly the threshold does not pass. No row is dropped and the
// pivot table is not mutated.
func Classify(pivot *entity.PivotTable, threshold float64) *entity.ClassificationReport {
	report := &entity.ClassificationReport{
		StaffHeader: DefaultStaffColumn,
		Months:      pivot.Months,
		Threshold:   threshold,
		Pass:        []entity.ClassifiedRow{},
		NoPass:      []entity.ClassifiedRow{},
	}

	for _, row := range pivot.Rows {
		pass := true
		for _, h := range row.Hours {
			if h <= threshold {
				pass = false
				break
			}
		}

		// Cópia das horas para que o relatório não compartilhe memória com o pivot.
		copied := entity.PivotedRow{Staff: row.Staff, Hours: append([]float64(nil), row.Hours...)}

		if pass {
			report.Pass = append(report.Pass, entity.ClassifiedRow{PivotedRow: copied, Status: entity.StatusPass})
		} else {
			report.NoPass = append(report.NoPass, entity.ClassifiedRow{PivotedRow: copied, Status: entity.StatusNoPass})
		}
	}

	return report
}
