package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"divron.com/attendance/storage"
)

// Collection keys. Each holds one JSON array.
const (
	employeesKey  = "employees"
	attendanceKey = "attendance"
	leavesKey     = "leaves"
)

// Seed administrator account, materialized by Init on a fresh backing.
const (
	SeedAdminEmail    = "admin@divron.com"
	SeedAdminPassword = "admin123"
)

// Store is the record store: typed collection-level CRUD over a KV backing.
// Operations read the whole collection, mutate it in memory and write it back;
// none of them enforce uniqueness — that is the caller's job.
type Store struct {
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Init seeds the admin account when the employees key has never been written.
// An explicitly stored empty list suppresses seeding, so wiping the roster on
// purpose does not resurrect the admin. Call once at construction time.
func (s *Store) Init(ctx context.Context) error {
	_, ok, err := s.kv.Get(ctx, employeesKey)
	if err != nil {
		return fmt.Errorf("probe %s: %w", employeesKey, err)
	}
	if ok {
		return nil
	}
	admin := Employee{
		ID:         NewID(),
		Name:       "Admin",
		Email:      SeedAdminEmail,
		Role:       RoleAdmin,
		Department: "Management",
		JoinDate:   time.Now(),
		Password:   SeedAdminPassword,
	}
	return writeList(ctx, s.kv, employeesKey, []Employee{admin})
}

func (s *Store) Employees(ctx context.Context) ([]Employee, error) {
	return readList[Employee](ctx, s.kv, employeesKey)
}

func (s *Store) AddEmployee(ctx context.Context, e Employee) error {
	employees, err := s.Employees(ctx)
	if err != nil {
		return err
	}
	return writeList(ctx, s.kv, employeesKey, append(employees, e))
}

func (s *Store) RemoveEmployee(ctx context.Context, id string) error {
	employees, err := s.Employees(ctx)
	if err != nil {
		return err
	}
	kept := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return writeList(ctx, s.kv, employeesKey, kept)
}

func (s *Store) Attendance(ctx context.Context) ([]AttendanceRecord, error) {
	return readList[AttendanceRecord](ctx, s.kv, attendanceKey)
}

func (s *Store) AddAttendance(ctx context.Context, r AttendanceRecord) error {
	records, err := s.Attendance(ctx)
	if err != nil {
		return err
	}
	return writeList(ctx, s.kv, attendanceKey, append(records, r))
}

// UpdateAttendance replaces the record with a matching id in place.
// An unknown id is a silent no-op, not an error.
func (s *Store) UpdateAttendance(ctx context.Context, r AttendanceRecord) error {
	records, err := s.Attendance(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == r.ID {
			records[i] = r
			return writeList(ctx, s.kv, attendanceKey, records)
		}
	}
	return nil
}

func (s *Store) Leaves(ctx context.Context) ([]Leave, error) {
	return readList[Leave](ctx, s.kv, leavesKey)
}

func (s *Store) AddLeave(ctx context.Context, l Leave) error {
	leaves, err := s.Leaves(ctx)
	if err != nil {
		return err
	}
	return writeList(ctx, s.kv, leavesKey, append(leaves, l))
}

// UpdateLeave has the same silent no-op contract as UpdateAttendance.
func (s *Store) UpdateLeave(ctx context.Context, l Leave) error {
	leaves, err := s.Leaves(ctx)
	if err != nil {
		return err
	}
	for i := range leaves {
		if leaves[i].ID == l.ID {
			leaves[i] = l
			return writeList(ctx, s.kv, leavesKey, leaves)
		}
	}
	return nil
}

func readList[T any](ctx context.Context, kv storage.KV, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return list, nil
}

func writeList[T any](ctx context.Context, kv storage.KV, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
