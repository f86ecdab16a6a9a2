// Package history defines generation history domain types and the store
// contract. Entries are immutable once written: stores only append or
// clear wholesale.
package history

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/colonyops/qrforge/internal/core/qr"
)

// Entry records one QR code generation.
type Entry struct {
	ID         string            `json:"id"`
	Type       qr.ContentType    `json:"type"`
	Command    string            `json:"command"`
	OutputPath string            `json:"output_path"`
	Data       map[string]string `json:"data"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewEntry builds an entry with a fresh short ID and the current time.
func NewEntry(t qr.ContentType, command, outputPath string, data map[string]string) Entry {
	if data == nil {
		data = map[string]string{}
	}
	return Entry{
		ID:         uuid.NewString()[:8],
		Type:       t,
		Command:    command,
		OutputPath: outputPath,
		Data:       data,
		CreatedAt:  time.Now(),
	}
}

// Store is the history persistence contract. Implementations are expected
// to read permissively: a missing or malformed backing file means an empty
// history, never a fatal error.
type Store interface {
	// Append records a new entry.
	Append(ctx context.Context, entry Entry) error

	// List returns entries newest first. A limit of 0 means unlimited.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Mask is the token substituted for secret values in display output.
const Mask = "****"

// passwordRe matches the value following a --password or -p flag, quoted
// or bare.
var passwordRe = regexp.MustCompile(`((?:--password[=\s]+|(?:^|\s)-p\s+)["']?)([^"'\s]+)(["']?)`)

// MaskCommand redacts password values in a recorded command line for
// display. The stored entry is never altered.
func MaskCommand(command string) string {
	return passwordRe.ReplaceAllString(command, "${1}"+Mask+"${3}")
}
