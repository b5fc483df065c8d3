package handlers

import (
	"time"

	"divron.com/attendance/core"
)

// EmployeeDTO is the employee as exposed over the wire: everything except the
// stored password.
type EmployeeDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	JoinDate   time.Time `json:"joinDate"`
}

func toEmployeeDTO(e core.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		JoinDate:   e.JoinDate,
	}
}

func toEmployeeDTOs(employees []core.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	return dtos
}
