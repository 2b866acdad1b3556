// Package pipeline implements the aggregation-and-classification core: row
// normalization, per-staff monthly summation, long-to-wide pivot over three
// selected months and threshold-based PASS / NO PASS classification. All
// functions are pure transforms over in-memory tables; the only failures are
// the schema and month-selection precondition checks.
package pipeline

// Configuration defaults. Threshold and conversion factor are policy knobs,
// not hardcoded business logic; the CLI and config file can override both.
const (
	DefaultThreshold    = 130.0
	DefaultUnitsPerHour = 4.0

	DefaultStaffColumn     = "Staff Name"
	DefaultDateColumn      = "Appt. Date"
	DefaultHoursColumn     = "Billing Hours"
	DefaultUnitsColumn     = "Billed Units"
	DefaultCompletedColumn = "Completed"
	DefaultCategoryColumn  = "Service Code"
)

// VariantConfig parameterizes the single pipeline for the two upload variants:
// plain billing hours, or billed units with an optional service-category
// filter. Hours are resolved as quantity / ConversionFactor; a factor <= 0
// means the quantity column already carries hours.
type VariantConfig struct {
	StaffColumn     string
	DateColumn      string
	QuantityColumn  string
	CompletedColumn string

	// CategoryColumn is only consulted when RequiredCategory is non-empty.
	CategoryColumn   string
	RequiredCategory string

	ConversionFactor float64
	Threshold        float64
}

// HoursVariant returns the configuration for billing exports that carry an
// hours column directly.
func HoursVariant() VariantConfig {
	return VariantConfig{
		StaffColumn:      DefaultStaffColumn,
		DateColumn:       DefaultDateColumn,
		QuantityColumn:   DefaultHoursColumn,
		CompletedColumn:  DefaultCompletedColumn,
		ConversionFactor: 1,
		Threshold:        DefaultThreshold,
	}
}

// UnitsVariant returns the configuration for billing exports that carry
// 15-minute billed units and a service-category column. requiredCategory may
// be empty, in which case the category filter is skipped.
func UnitsVariant(requiredCategory string) VariantConfig {
	return VariantConfig{
		StaffColumn:      DefaultStaffColumn,
		DateColumn:       DefaultDateColumn,
		QuantityColumn:   DefaultUnitsColumn,
		CompletedColumn:  DefaultCompletedColumn,
		CategoryColumn:   DefaultCategoryColumn,
		RequiredCategory: requiredCategory,
		ConversionFactor: DefaultUnitsPerHour,
		Threshold:        DefaultThreshold,
	}
}

// requiredColumns lists the columns that must exist in the table schema for
// this variant. The category column only becomes required when the strict
// category filter is active.
func (c VariantConfig) requiredColumns() []string {
	required := []string{c.StaffColumn, c.DateColumn, c.QuantityColumn, c.CompletedColumn}
	if c.RequiredCategory != "" {
		required = append(required, c.CategoryColumn)
	}
	return required
}

// factor resolves the conversion divisor, treating non-positive values as "the
// quantity is already hours".
func (c VariantConfig) factor() float64 {
	if c.ConversionFactor <= 0 {
		return 1
	}
	return c.ConversionFactor
}

// threshold resolves the classification threshold, defaulting when unset.
func (c VariantConfig) threshold() float64 {
	if c.Threshold <= 0 {
		return DefaultThreshold
	}
	return c.Threshold
}
