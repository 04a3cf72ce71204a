// Package model defines the answer data types shared by units, the CLI and the journal.
package model

import (
	"fmt"
	"time"
)

// Answer is one numeric result produced by a unit.
type Answer struct {
	Part  int    `json:"part"`
	Label string `json:"label"`
	Value uint64 `json:"value"`
}

// String renders the answer the way it is printed to stdout.
func (a Answer) String() string {
	return fmt.Sprintf("%s: %d", a.Label, a.Value)
}

// Entry is an answer recorded in the journal.
type Entry struct {
	ID          string    `json:"id"`
	RunID       string    `json:"run_id"`
	Unit        string    `json:"unit"`
	Part        int       `json:"part"`
	Label       string    `json:"label"`
	Value       uint64    `json:"value"`
	InputDigest string    `json:"input_digest,omitempty"`
	Sample      bool      `json:"sample,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
