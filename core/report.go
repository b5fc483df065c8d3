package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"divron.com/attendance/utils"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var ErrUnknownPeriod = errors.New("unknown report period")

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// FilterByPeriod keeps the records whose date falls in the period containing
// now, compared on local calendar components. Input order is preserved.
func FilterByPeriod(records []AttendanceRecord, period Period, now time.Time) []AttendanceRecord {
	matched := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		var keep bool
		switch period {
		case PeriodDaily:
			keep = utils.SameDay(r.Date, now)
		case PeriodMonthly:
			keep = utils.SameMonth(r.Date, now)
		case PeriodYearly:
			keep = utils.SameYear(r.Date, now)
		}
		if keep {
			matched = append(matched, r)
		}
	}
	return matched
}

var reportHeader = []string{"Employee ID", "Date", "Check In", "Check Out", "Status"}

// checkOutCell renders a missing checkout as the literal N/A.
func checkOutCell(r AttendanceRecord) string {
	if r.CheckOut == "" {
		return "N/A"
	}
	return r.CheckOut
}

func WriteCSV(w io.Writer, records []AttendanceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.EmployeeID,
			r.Date.Format(time.RFC3339),
			r.CheckIn,
			checkOutCell(r),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReportFileName follows the attendance_<period>_<timestamp> convention the
// exported files have always used.
func ReportFileName(period Period, now time.Time, ext string) string {
	return fmt.Sprintf("attendance_%s_%s.%s", period, now.Format(time.RFC3339), ext)
}
