package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 3, hour, min, 0, 0, time.UTC)
}

func TestCheckInStatusByHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, StatusPresent},
		{7, StatusPresent},
		{8, StatusPresent},
		{9, StatusLate}, // boundary: 09:00 exactly is late
		{10, StatusLate},
		{23, StatusLate},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour %02d", tt.hour), func(t *testing.T) {
			ctx := context.Background()
			s, _ := newTestStore(t)

			record, err := CheckIn(ctx, s, "e1", at(tt.hour, 30))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.Status)
			assert.Equal(t, fmt.Sprintf("%02d:30:00", tt.hour), record.CheckIn)
			assert.Empty(t, record.CheckOut)
		})
	}
}

func TestCheckOutNeverChangesStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// on-time check-in, late-evening check-out
	in, err := CheckIn(ctx, s, "e1", at(8, 0))
	require.NoError(t, err)
	require.Equal(t, StatusPresent, in.Status)

	out, err := CheckOut(ctx, s, "e1", at(22, 15))
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, out.Status)
	assert.Equal(t, "22:15:00", out.CheckOut)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.CheckIn, out.CheckIn)

	records, err := s.Attendance(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, StatusPresent, records[0].Status)
}

func TestCheckInTwiceSameDayRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := CheckIn(ctx, s, "e1", at(8, 0))
	require.NoError(t, err)

	_, err = CheckIn(ctx, s, "e1", at(14, 0))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	records, err := s.Attendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := CheckOut(ctx, s, "e1", at(17, 0))
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	_, err = CheckIn(ctx, s, "e1", at(8, 0))
	require.NoError(t, err)
	_, err = CheckOut(ctx, s, "e1", at(17, 0))
	require.NoError(t, err)

	_, err = CheckOut(ctx, s, "e1", at(18, 0))
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestTodayIsACalendarDayNotARollingWindow(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// checked in late yesterday evening
	yesterday := time.Date(2024, 6, 2, 23, 30, 0, 0, time.UTC)
	_, err := CheckIn(ctx, s, "e1", yesterday)
	require.NoError(t, err)

	// less than 24h later, but a new calendar day
	today := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	record, err := TodayRecord(ctx, s, "e1", today)
	require.NoError(t, err)
	assert.Nil(t, record)

	_, err = CheckIn(ctx, s, "e1", today)
	require.NoError(t, err)

	records, err := s.Attendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestTodayRecordMatchesEmployee(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := CheckIn(ctx, s, "e1", at(8, 0))
	require.NoError(t, err)

	record, err := TodayRecord(ctx, s, "e2", at(9, 0))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestDayState(t *testing.T) {
	assert.Equal(t, DayStateNotCheckedIn, DayState(nil))
	assert.Equal(t, DayStateCheckedIn, DayState(&AttendanceRecord{CheckIn: "08:00:00"}))
	assert.Equal(t, DayStateCheckedOut, DayState(&AttendanceRecord{CheckIn: "08:00:00", CheckOut: "17:00:00"}))
}
