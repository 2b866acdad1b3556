package entity

// Table is an in-memory tabular dataset with named columns, as produced by the
// billing file parsers. Cell values are kept as raw strings; typing and
// filtering happen later in the pipeline.
type Table struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// HasColumn reports whether the table schema contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the required column names that are absent from the
// table schema, preserving the order of required.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
