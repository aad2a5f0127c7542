package flatfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_management/internal/adapter/repository/flatfile"
	"github.com/srgjo27/hotel_management/internal/core/domain"
)

func newStore(t *testing.T) (*flatfile.GuestRecordStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CustomerData.txt")
	return flatfile.NewGuestRecordStore(path), path
}

func sampleRecord(room int) domain.GuestRecord {
	return domain.GuestRecord{
		Name:          "Alina Khan",
		RoomNumber:    room,
		CheckInTime:   domain.TimeUnset,
		CheckOutTime:  domain.TimeUnset,
		ContactNumber: "03001234567",
		EmailAddress:  "alina@example.com",
		StayDays:      3,
	}
}

func TestAppend_ReadAll_RoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	want := sampleRecord(7)
	require.NoError(t, store.Append(ctx, want))

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0])
}

func TestAppend_WritesSentinelForUnsetTimes(t *testing.T) {
	store, path := newStore(t)

	rec := sampleRecord(7)
	rec.CheckInTime = ""
	rec.CheckOutTime = ""
	require.NoError(t, store.Append(context.Background(), rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alina Khan,7,-,-,03001234567,alina@example.com,3\n", string(data))
}

func TestUpdateCheckIn_PatchesFirstMatchOnly(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	first := sampleRecord(7)
	second := sampleRecord(7)
	second.Name = "Bilal Ahmed"
	other := sampleRecord(9)
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))
	require.NoError(t, store.Append(ctx, other))

	require.NoError(t, store.UpdateCheckIn(ctx, 7, "2024-01-15 14:00:00"))

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2024-01-15 14:00:00", records[0].CheckInTime)
	assert.Equal(t, domain.TimeUnset, records[0].CheckOutTime)
	// second line for the same room and the other room stay untouched
	assert.Equal(t, domain.TimeUnset, records[1].CheckInTime)
	assert.Equal(t, domain.TimeUnset, records[2].CheckInTime)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Bilal Ahmed,7,-,-,03001234567,alina@example.com,3", lines[1])
}

func TestUpdateCheckOut_PreservesCheckInField(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleRecord(12)))
	require.NoError(t, store.UpdateCheckIn(ctx, 12, "2024-01-15 14:00:00"))
	require.NoError(t, store.UpdateCheckOut(ctx, 12, "2024-01-18 11:30:00"))

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-15 14:00:00", records[0].CheckInTime)
	assert.Equal(t, "2024-01-18 11:30:00", records[0].CheckOutTime)
	assert.True(t, records[0].CheckedIn())
	assert.True(t, records[0].CheckedOut())
}

func TestUpdate_NoMatch_RecordNotFound(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleRecord(7)))

	err := store.UpdateCheckIn(ctx, 42, "2024-01-15 14:00:00")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestUpdate_MissingFile_StoreUnavailable(t *testing.T) {
	store, _ := newStore(t)

	err := store.UpdateCheckOut(context.Background(), 7, "2024-01-18 11:30:00")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestReadAll_SkipsMalformedLines(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, sampleRecord(7)))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("garbage line without enough fields\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadAll_FileOrderIsInsertionOrder(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	for _, room := range []int{5, 3, 8} {
		require.NoError(t, store.Append(ctx, sampleRecord(room)))
	}

	records, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 5, records[0].RoomNumber)
	assert.Equal(t, 3, records[1].RoomNumber)
	assert.Equal(t, 8, records[2].RoomNumber)
}
