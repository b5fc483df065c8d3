package core

import (
	"context"
	"errors"
	"time"

	"divron.com/attendance/utils"
)

// LateHour is the local 24-hour clock hour at which a check-in counts as late.
const LateHour = 9

const clockLayout = "15:04:05"

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("not checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

// Day states, as shown to the employee.
const (
	DayStateNotCheckedIn = "Not Checked In"
	DayStateCheckedIn    = "Checked In"
	DayStateCheckedOut   = "Checked Out"
)

// TodayRecord returns the employee's attendance record for the calendar day of
// now, or nil when there is none. "Today" is a calendar-day comparison in
// local time, not a rolling 24-hour window.
func TodayRecord(ctx context.Context, s *Store, employeeID string, now time.Time) (*AttendanceRecord, error) {
	records, err := s.Attendance(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EmployeeID == employeeID && utils.SameDay(records[i].Date, now) {
			return &records[i], nil
		}
	}
	return nil, nil
}

// CheckIn creates the today-record. The status is fixed here, once, and never
// recomputed afterwards — checking out at any hour does not change it.
func CheckIn(ctx context.Context, s *Store, employeeID string, now time.Time) (*AttendanceRecord, error) {
	existing, err := TodayRecord(ctx, s, employeeID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	status := StatusPresent
	if now.Hour() >= LateHour {
		status = StatusLate
	}
	record := AttendanceRecord{
		ID:         NewID(),
		EmployeeID: employeeID,
		Date:       now,
		CheckIn:    now.Format(clockLayout),
		Status:     status,
	}
	if err := s.AddAttendance(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CheckOut stamps the checkout time on the today-record. All other fields,
// status included, are left untouched.
func CheckOut(ctx context.Context, s *Store, employeeID string, now time.Time) (*AttendanceRecord, error) {
	existing, err := TodayRecord(ctx, s, employeeID, now)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotCheckedIn
	}
	if existing.CheckOut != "" {
		return nil, ErrAlreadyCheckedOut
	}

	existing.CheckOut = now.Format(clockLayout)
	if err := s.UpdateAttendance(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DayState maps a today-record (possibly nil) to its display state.
func DayState(record *AttendanceRecord) string {
	switch {
	case record == nil:
		return DayStateNotCheckedIn
	case record.CheckOut == "":
		return DayStateCheckedIn
	default:
		return DayStateCheckedOut
	}
}
