// Package flatfile persists the guest ledger as plain text: one
// record per line, seven comma-joined fields in fixed order (name,
// room number, check-in time, check-out time, contact number, email
// address, stay days). Unset times carry the "-" sentinel. Updates
// use read-modify-rewrite over the whole file, which is safe only
// under a single writer.
package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/srgjo27/hotel_management/internal/core/domain"
)

const (
	delimiter  = ","
	fieldCount = 7
)

const (
	fieldName = iota
	fieldRoomNumber
	fieldCheckIn
	fieldCheckOut
	fieldContact
	fieldEmail
	fieldStayDays
)

type GuestRecordStore struct {
	path string
}

func NewGuestRecordStore(path string) *GuestRecordStore {
	return &GuestRecordStore{path: path}
}

// Append serializes the record and adds it as one line at the end of
// the ledger, creating the file on first use.
func (s *GuestRecordStore) Append(ctx context.Context, record domain.GuestRecord) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s for append: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(encodeLine(record) + "\n"); err != nil {
		return fmt.Errorf("%w: append to %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	return nil
}

// UpdateCheckIn patches the check-in field of the first line whose
// room-number field matches, then rewrites the whole ledger.
func (s *GuestRecordStore) UpdateCheckIn(ctx context.Context, roomNumber int, checkInTime string) error {
	return s.updateField(roomNumber, fieldCheckIn, checkInTime)
}

// UpdateCheckOut patches the check-out field of the first line whose
// room-number field matches, then rewrites the whole ledger.
func (s *GuestRecordStore) UpdateCheckOut(ctx context.Context, roomNumber int, checkOutTime string) error {
	return s.updateField(roomNumber, fieldCheckOut, checkOutTime)
}

// updateField patches one field of the first matching line only.
// Rooms get rebooked over time, so later lines may share the room
// number; those lines are left exactly as they were.
func (s *GuestRecordStore) updateField(roomNumber, field int, value string) error {
	lines, err := s.readLines()
	if err != nil {
		return err
	}

	target := strconv.Itoa(roomNumber)
	updated := false
	for i, line := range lines {
		fields := strings.Split(line, delimiter)
		if len(fields) != fieldCount || fields[fieldRoomNumber] != target {
			continue
		}
		fields[field] = value
		lines[i] = strings.Join(fields, delimiter)
		updated = true
		break
	}

	if !updated {
		return fmt.Errorf("room %d: %w", roomNumber, domain.ErrRecordNotFound)
	}

	return s.writeLines(lines)
}

// ReadAll parses the ledger into records in file order. Lines that do
// not split into the expected seven fields are skipped.
func (s *GuestRecordStore) ReadAll(ctx context.Context) ([]domain.GuestRecord, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	records := make([]domain.GuestRecord, 0, len(lines))
	for _, line := range lines {
		record, ok := parseLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *GuestRecordStore) readLines() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s for read: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return lines, nil
}

func (s *GuestRecordStore) writeLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: rewrite %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}

func encodeLine(record domain.GuestRecord) string {
	checkIn := record.CheckInTime
	if checkIn == "" {
		checkIn = domain.TimeUnset
	}
	checkOut := record.CheckOutTime
	if checkOut == "" {
		checkOut = domain.TimeUnset
	}

	return strings.Join([]string{
		record.Name,
		strconv.Itoa(record.RoomNumber),
		checkIn,
		checkOut,
		record.ContactNumber,
		record.EmailAddress,
		strconv.Itoa(record.StayDays),
	}, delimiter)
}

func parseLine(line string) (domain.GuestRecord, bool) {
	fields := strings.Split(line, delimiter)
	if len(fields) != fieldCount {
		return domain.GuestRecord{}, false
	}

	roomNumber, err := strconv.Atoi(fields[fieldRoomNumber])
	if err != nil {
		return domain.GuestRecord{}, false
	}
	stayDays, err := strconv.Atoi(fields[fieldStayDays])
	if err != nil {
		return domain.GuestRecord{}, false
	}

	return domain.GuestRecord{
		Name:          fields[fieldName],
		RoomNumber:    roomNumber,
		CheckInTime:   fields[fieldCheckIn],
		CheckOutTime:  fields[fieldCheckOut],
		ContactNumber: fields[fieldContact],
		EmailAddress:  fields[fieldEmail],
		StayDays:      stayDays,
	}, true
}
