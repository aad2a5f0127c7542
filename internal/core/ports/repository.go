package ports

import (
	"context"
	"time"

	"github.com/srgjo27/hotel_management/internal/core/domain"
)

// GuestRecordStore is the persistent guest ledger. Append adds one
// record; the update methods patch the check-in or check-out field of
// the first stored record whose room number matches, leaving every
// other record untouched. ReadAll returns the records in file order.
type GuestRecordStore interface {
	Append(ctx context.Context, record domain.GuestRecord) error
	UpdateCheckIn(ctx context.Context, roomNumber int, checkInTime string) error
	UpdateCheckOut(ctx context.Context, roomNumber int, checkOutTime string) error
	ReadAll(ctx context.Context) ([]domain.GuestRecord, error)
}

// Clock yields the current time. It is a port so the services can be
// tested against a fixed timestamp.
type Clock interface {
	Now() time.Time
}
