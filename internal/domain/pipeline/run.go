package pipeline

import (
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

// Run executes the full pipeline as one pure function of its inputs:
// raw table -> qualifying records -> monthly totals -> pivot -> classification.
// It either returns the complete report or an error from one of the two
// precondition checks (schema, month cardinality); there is no partial output.
func Run(table *entity.Table, cfg VariantConfig, selectedMonths []string) (*entity.ClassificationReport, error) {
	records, err := Normalize(table, cfg)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(records)

	pivot, err := Pivot(totals, selectedMonths)
	if err != nil {
		return nil, err
	}

	report := Classify(pivot, cfg.threshold())
	report.StaffHeader = cfg.StaffColumn
	return report, nil
}
