package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_management/internal/core/domain"
	"github.com/srgjo27/hotel_management/internal/core/ports"
	"github.com/srgjo27/hotel_management/internal/core/validation"
)

type BookRoomRequest struct {
	RoomNumber    int
	GuestName     string
	ContactNumber string
	EmailAddress  string
	StayDays      string
	PaymentMethod string
}

type BookRoomResponse struct {
	BookingID  string
	RoomNumber int
	GuestName  string
	StayDays   int
}

type CheckInRequest struct {
	RoomNumber int
	// CardNumber is required only when the stored payment method is
	// Credit; the menu prompts for it.
	CardNumber string
}

type CheckInResponse struct {
	RoomNumber    int
	GuestName     string
	RoomType      domain.RoomType
	PricePerDay   int
	StayDays      int
	TotalBill     int
	PaymentMethod domain.PaymentMethod
	CheckInTime   string
}

type CheckOutResponse struct {
	RoomNumber   int
	GuestName    string
	CheckOutTime string
}

// InventoryService owns the room inventory and drives the lifecycle
// free -> booked -> checked-in -> free. Every transition that touches
// the ledger may leave the in-memory room ahead of the file: the
// store is a second resource with no shared transaction, so a failed
// ledger write is logged and surfaced next to the response instead of
// rolling the room back. A method that returns both a non-nil response
// and a non-nil error committed the transition but could not record it.
type InventoryService struct {
	rooms     []*domain.Room
	store     ports.GuestRecordStore
	clock     ports.Clock
	validator *validation.Validator
}

func NewInventoryService(rooms []*domain.Room, store ports.GuestRecordStore, clock ports.Clock, v *validation.Validator) *InventoryService {
	return &InventoryService{
		rooms:     rooms,
		store:     store,
		clock:     clock,
		validator: v,
	}
}

// Lookup returns a snapshot of the room, or ErrRoomNotFound.
func (s *InventoryService) Lookup(roomNumber int) (*domain.Room, error) {
	room, err := s.find(roomNumber)
	if err != nil {
		return nil, err
	}
	snap := room.Snapshot()
	return &snap, nil
}

// Rooms returns snapshots of every room in room-number order.
func (s *InventoryService) Rooms() []domain.Room {
	out := make([]domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, room.Snapshot())
	}
	return out
}

// Book reserves a free room for a validated guest and appends the
// corresponding ledger record with unset check-in and check-out times.
func (s *InventoryService) Book(ctx context.Context, req BookRoomRequest) (*BookRoomResponse, error) {
	room, err := s.find(req.RoomNumber)
	if err != nil {
		return nil, err
	}

	if !room.IsFree() {
		return nil, fmt.Errorf("room %d: %w", req.RoomNumber, domain.ErrAlreadyBooked)
	}

	if err := s.validator.ValidateGuest(validation.GuestInput{
		Name:          req.GuestName,
		ContactNumber: req.ContactNumber,
		EmailAddress:  req.EmailAddress,
		StayDays:      req.StayDays,
		PaymentMethod: req.PaymentMethod,
	}); err != nil {
		return nil, err
	}

	days, err := validation.ParseStayDays(req.StayDays)
	if err != nil {
		return nil, err
	}

	guest := &domain.Guest{
		BookingID:     uuid.New(),
		Name:          req.GuestName,
		ContactNumber: req.ContactNumber,
		EmailAddress:  req.EmailAddress,
		StayDays:      days,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	room.Status = domain.RoomBooked
	room.Guest = guest

	resp := &BookRoomResponse{
		BookingID:  guest.BookingID.String(),
		RoomNumber: room.Number,
		GuestName:  guest.Name,
		StayDays:   days,
	}

	record := domain.GuestRecord{
		Name:          guest.Name,
		RoomNumber:    room.Number,
		CheckInTime:   domain.TimeUnset,
		CheckOutTime:  domain.TimeUnset,
		ContactNumber: guest.ContactNumber,
		EmailAddress:  guest.EmailAddress,
		StayDays:      days,
	}

	if err := s.store.Append(ctx, record); err != nil {
		log.Printf("Room %d booked in memory but ledger append failed: %v", room.Number, err)
		return resp, err
	}

	return resp, nil
}

// CheckIn bills the stay, authorizes the stored payment method, and on
// success records the check-in time in memory and in the ledger. On
// ErrPaymentDeclined the room stays booked and nothing is written.
func (s *InventoryService) CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResponse, error) {
	room, err := s.find(req.RoomNumber)
	if err != nil {
		return nil, err
	}

	switch room.Status {
	case domain.RoomFree:
		return nil, fmt.Errorf("room %d: %w", req.RoomNumber, domain.ErrNotBooked)
	case domain.RoomCheckedIn:
		return nil, fmt.Errorf("room %d: %w", req.RoomNumber, domain.ErrAlreadyCheckedIn)
	}

	guest := room.Guest
	total := ComputeTotal(room.PricePerDay, guest.StayDays)

	if err := AuthorizePayment(guest.PaymentMethod, req.CardNumber); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	room.Status = domain.RoomCheckedIn
	room.CheckInAt = &now

	resp := &CheckInResponse{
		RoomNumber:    room.Number,
		GuestName:     guest.Name,
		RoomType:      room.Type,
		PricePerDay:   room.PricePerDay,
		StayDays:      guest.StayDays,
		TotalBill:     total,
		PaymentMethod: guest.PaymentMethod,
		CheckInTime:   now.Format(domain.TimeLayout),
	}

	if err := s.store.UpdateCheckIn(ctx, room.Number, resp.CheckInTime); err != nil {
		log.Printf("Room %d checked in at %s but ledger update failed: %v", room.Number, resp.CheckInTime, err)
		return resp, err
	}

	return resp, nil
}

// CheckOut frees a booked or checked-in room, records the check-out
// time in the ledger, and clears the guest from memory.
func (s *InventoryService) CheckOut(ctx context.Context, roomNumber int) (*CheckOutResponse, error) {
	room, err := s.find(roomNumber)
	if err != nil {
		return nil, err
	}

	if room.IsFree() {
		return nil, fmt.Errorf("room %d: %w", roomNumber, domain.ErrAlreadyFree)
	}

	now := s.clock.Now()
	resp := &CheckOutResponse{
		RoomNumber:   room.Number,
		GuestName:    room.Guest.Name,
		CheckOutTime: now.Format(domain.TimeLayout),
	}

	room.Status = domain.RoomFree
	room.Guest = nil
	room.CheckInAt = nil

	if err := s.store.UpdateCheckOut(ctx, room.Number, resp.CheckOutTime); err != nil {
		log.Printf("Room %d checked out at %s but ledger update failed: %v", room.Number, resp.CheckOutTime, err)
		return resp, err
	}

	return resp, nil
}

func (s *InventoryService) find(roomNumber int) (*domain.Room, error) {
	for _, room := range s.rooms {
		if room.Number == roomNumber {
			return room, nil
		}
	}
	return nil, fmt.Errorf("room %d: %w", roomNumber, domain.ErrRoomNotFound)
}
