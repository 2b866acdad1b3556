package types

// Config represents the application configuration that can be loaded from a file.
// Column names default to the Aloha billing export headers when empty.
type Config struct {
	File         string   `json:"file" yaml:"file" toml:"file"`
	Months       []string `json:"months" yaml:"months" toml:"months"`
	Variant      string   `json:"variant" yaml:"variant" toml:"variant"`
	Threshold    float64  `json:"threshold" yaml:"threshold" toml:"threshold"`
	UnitsPerHour float64  `json:"units_per_hour" yaml:"units_per_hour" toml:"units_per_hour"`
	Category     string   `json:"category" yaml:"category" toml:"category"`

	StaffColumn     string `json:"staff_column" yaml:"staff_column" toml:"staff_column"`
	DateColumn      string `json:"date_column" yaml:"date_column" toml:"date_column"`
	QuantityColumn  string `json:"quantity_column" yaml:"quantity_column" toml:"quantity_column"`
	CompletedColumn string `json:"completed_column" yaml:"completed_column" toml:"completed_column"`
	CategoryColumn  string `json:"category_column" yaml:"category_column" toml:"category_column"`

	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
