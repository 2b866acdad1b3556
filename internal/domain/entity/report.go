package entity

// Status values assigned by the classifier.
const (
	StatusPass   = "PASS"
	StatusNoPass = "NO PASS"
)

// PivotedRow lays out one staff member's totals for the three selected months.
// Hours is index-aligned with the Months slice of the enclosing PivotTable;
// months without qualifying hours hold 0, never a missing entry.
type PivotedRow struct {
	Staff string    `json:"staff"`
	Hours []float64 `json:"hours"`
}

// PivotTable is the wide-format result of the pivot step: one row per staff
// member, one column per selected month in ascending chronological order.
type PivotTable struct {
	Months []string     `json:"months"`
	Rows   []PivotedRow `json:"rows"`
}

// ClassifiedRow is a pivoted row plus its full-time status.
type ClassifiedRow struct {
	PivotedRow
	Status string `json:"status"`
}

// ClassificationReport holds the final output of one pipeline run: the PASS
// and NO PASS partitions sharing the same column layout. Every pivoted row
// appears in exactly one of the two partitions.
type ClassificationReport struct {
	StaffHeader string          `json:"staff_header"`
	Months      []string        `json:"months"`
	Threshold   float64         `json:"threshold"`
	Pass        []ClassifiedRow `json:"pass"`
	NoPass      []ClassifiedRow `json:"no_pass"`
}

// TotalHours soma as horas de ambas as partições, usado para o resumo no
// console e para a verificação de conservação nos testes.
func (r *ClassificationReport) TotalHours() float64 {
	total := 0.0
	for _, row := range r.Pass {
		for _, h := range row.Hours {
			total += h
		}
	}
	for _, row := range r.NoPass {
		for _, h := range row.Hours {
			total += h
		}
	}
	return total
}
