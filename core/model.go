package core

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Attendance statuses. StatusAbsent is part of the vocabulary but nothing in
// the engine produces it; marking absences would be an end-of-day process that
// does not exist yet.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

const (
	LeaveTypeSick     = "sick"
	LeaveTypeVacation = "vacation"
	LeaveTypePersonal = "personal"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	JoinDate   time.Time `json:"joinDate"`
	// Stored and compared in plain text. Known gap carried over from the
	// system this replaces; see DESIGN.md before "fixing" it.
	Password string `json:"password"`
}

type AttendanceRecord struct {
	ID string `json:"id"`
	// Non-owning reference: removing the employee leaves these records behind.
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut,omitempty"`
	Status     string    `json:"status"`
}

type Leave struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
}
