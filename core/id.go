package core

import "github.com/google/uuid"

// NewID returns an opaque unique id for any record kind.
func NewID() string {
	return uuid.NewString()
}
