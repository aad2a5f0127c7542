package domain

// TimeUnset is the sentinel written to the ledger for a check-in or
// check-out that has not happened yet. Consumers must treat it as
// "not yet occurred", never as a literal timestamp.
const TimeUnset = "-"

// GuestRecord is one line of the guest ledger: seven fields in fixed
// order, joined by the ledger delimiter. Records are appended when a
// room is booked and patched in place when the guest checks in or out;
// they are never deleted, so history accumulates and a room number can
// appear on many lines.
type GuestRecord struct {
	Name          string
	RoomNumber    int
	CheckInTime   string
	CheckOutTime  string
	ContactNumber string
	EmailAddress  string
	StayDays      int
}

func (r GuestRecord) CheckedIn() bool {
	return r.CheckInTime != TimeUnset && r.CheckInTime != ""
}

func (r GuestRecord) CheckedOut() bool {
	return r.CheckOutTime != TimeUnset && r.CheckOutTime != ""
}
