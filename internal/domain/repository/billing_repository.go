package repository

import (
	"github.com/clinicops/bt-fulltime-monitor-go/internal/domain/entity"
)

// BillingRepository defines the interface for reading billing exports into an
// in-memory table. File-format parsing ends here; everything downstream works
// on the parsed table.
type BillingRepository interface {
	LoadTable(path string) (*entity.Table, error)
}
