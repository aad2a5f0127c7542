package domain

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomFree      RoomStatus = "FREE"
	RoomBooked    RoomStatus = "BOOKED"
	RoomCheckedIn RoomStatus = "CHECKED_IN"
)

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCredit PaymentMethod = "Credit"
)

// TimeLayout is the timestamp format used everywhere a check-in or
// check-out time is rendered, both on screen and in the ledger file.
const TimeLayout = "2006-01-02 15:04:05"

// Guest holds the details of the current booking episode of a room.
// BookingID identifies the episode in memory; it is not persisted,
// the ledger stays keyed by room number.
type Guest struct {
	BookingID     uuid.UUID
	Name          string
	ContactNumber string
	EmailAddress  string
	StayDays      int
	PaymentMethod PaymentMethod
}

// Room is one hotel room. Guest and CheckInAt are set only while the
// room is occupied: Guest is non-nil iff Status is not RoomFree, and
// CheckInAt is non-nil iff Status is RoomCheckedIn.
type Room struct {
	Number      int
	Status      RoomStatus
	Type        RoomType
	PricePerDay int
	Amenities   []string
	Guest       *Guest
	CheckInAt   *time.Time
}

func (r *Room) IsFree() bool {
	return r.Status == RoomFree
}

// Snapshot returns a copy of the room detached from inventory-owned
// state, safe for callers to hold across later transitions.
func (r *Room) Snapshot() Room {
	snap := *r
	snap.Amenities = append([]string(nil), r.Amenities...)
	if r.Guest != nil {
		g := *r.Guest
		snap.Guest = &g
	}
	if r.CheckInAt != nil {
		t := *r.CheckInAt
		snap.CheckInAt = &t
	}
	return snap
}

// standardAmenities is shared by every room.
var standardAmenities = []string{"A/C", "Geyser", "TV", "Free WiFi"}

// NewRooms builds the fixed inventory: room numbers 1..count, type by
// number range (1-30 Single, 31-60 Double, the rest Suite), rooms 1-5
// at 1500 per day and the rest at 2500.
func NewRooms(count int) []*Room {
	rooms := make([]*Room, 0, count)
	for n := 1; n <= count; n++ {
		roomType := RoomSuite
		switch {
		case n <= 30:
			roomType = RoomSingle
		case n <= 60:
			roomType = RoomDouble
		}

		price := 2500
		if n <= 5 {
			price = 1500
		}

		rooms = append(rooms, &Room{
			Number:      n,
			Status:      RoomFree,
			Type:        roomType,
			PricePerDay: price,
			Amenities:   append([]string(nil), standardAmenities...),
		})
	}
	return rooms
}
