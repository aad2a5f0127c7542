package services

import (
	"context"

	"github.com/srgjo27/hotel_management/internal/core/domain"
	"github.com/srgjo27/hotel_management/internal/core/ports"
)

type RoomAvailability struct {
	RoomNumber int
	Booked     bool
}

type RoomDetails struct {
	RoomNumber  int
	Type        domain.RoomType
	PricePerDay int
	Amenities   []string
}

type RoomSummary struct {
	RoomNumber  int
	GuestName   string
	Type        domain.RoomType
	Status      domain.RoomStatus
	CheckInTime string
}

// ReportingService produces read-only projections over the inventory
// and the guest ledger. It never mutates either.
type ReportingService struct {
	inventory *InventoryService
	store     ports.GuestRecordStore
}

func NewReportingService(inventory *InventoryService, store ports.GuestRecordStore) *ReportingService {
	return &ReportingService{inventory: inventory, store: store}
}

// ListAll reports every room's booked/free flag in room-number order.
func (s *ReportingService) ListAll() []RoomAvailability {
	rooms := s.inventory.Rooms()
	out := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, RoomAvailability{
			RoomNumber: room.Number,
			Booked:     !room.IsFree(),
		})
	}
	return out
}

// Describe reports the fixed attributes of one room.
func (s *ReportingService) Describe(roomNumber int) (*RoomDetails, error) {
	room, err := s.inventory.Lookup(roomNumber)
	if err != nil {
		return nil, err
	}
	return &RoomDetails{
		RoomNumber:  room.Number,
		Type:        room.Type,
		PricePerDay: room.PricePerDay,
		Amenities:   room.Amenities,
	}, nil
}

// GuestLedger re-reads the ledger and returns its records in file
// order, which is insertion order.
func (s *ReportingService) GuestLedger(ctx context.Context) ([]domain.GuestRecord, error) {
	return s.store.ReadAll(ctx)
}

// Summary reports, per room, the guest name (if any), type, status,
// and check-in time (if checked in). Calling it twice without an
// intervening mutation yields identical output.
func (s *ReportingService) Summary() []RoomSummary {
	rooms := s.inventory.Rooms()
	out := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := RoomSummary{
			RoomNumber: room.Number,
			Type:       room.Type,
			Status:     room.Status,
		}
		if room.Guest != nil {
			summary.GuestName = room.Guest.Name
		}
		if room.CheckInAt != nil {
			summary.CheckInTime = room.CheckInAt.Format(domain.TimeLayout)
		}
		out = append(out, summary)
	}
	return out
}
