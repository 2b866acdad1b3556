package entity

import "time"

// AppointmentRecord is one qualifying billing row after normalization: the
// completion (and, in the strict variant, category) filters already applied,
// the appointment date parsed and the work quantity resolved into hours.
type AppointmentRecord struct {
	Staff    string    `json:"staff"`
	Date     time.Time `json:"date"`
	MonthKey string    `json:"month_key"`
	Hours    float64   `json:"hours"`
}

// MonthlyTotal is the summed qualifying hours for one staff member in one
// calendar month. Pairs with no qualifying rows simply do not appear.
type MonthlyTotal struct {
	Staff    string  `json:"staff"`
	MonthKey string  `json:"month_key"`
	Hours    float64 `json:"hours"`
}
