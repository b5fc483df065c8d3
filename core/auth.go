package core

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already exists")
)

// Login scans the roster for an exact email+password match. The collection is
// insertion-ordered, so the first inserted match wins.
func Login(ctx context.Context, s *Store, email, password string) (*Employee, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Email == email && employees[i].Password == password {
			return &employees[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

type Registration struct {
	Name       string
	Email      string
	Department string
	Password   string
}

// Register appends a new employee unless the email is already taken.
// Self-service and admin-created accounts both get the employee role.
func Register(ctx context.Context, s *Store, reg Registration, now time.Time) (*Employee, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Email == reg.Email {
			return nil, ErrDuplicateEmail
		}
	}
	emp := Employee{
		ID:         NewID(),
		Name:       reg.Name,
		Email:      reg.Email,
		Role:       RoleEmployee,
		Department: reg.Department,
		JoinDate:   now,
		Password:   reg.Password,
	}
	if err := s.AddEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}
