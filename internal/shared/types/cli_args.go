package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	File         string
	Months       []string
	Variant      string
	Threshold    float64
	UnitsPerHour float64
	Category     string
	ListMonths   bool
	ReportName   string
	ReportType   []string
	Dir          string

	// Column overrides, only settable via config file.
	StaffColumn     string
	DateColumn      string
	QuantityColumn  string
	CompletedColumn string
	CategoryColumn  string
}
