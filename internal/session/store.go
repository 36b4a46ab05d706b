package session

import (
	"context"
	"errors"
)

// ErrNoSession covers every way a session can be absent: no slot, expired
// slot, or a slot whose contents no longer parse. Callers treat all three
// the same, never as a fault.
var ErrNoSession = errors.New("session: no session")

// Identity is the minimal profile persisted at login. The academic record
// itself is never stored here; it is re-fetched per session.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Program string `json:"program,omitempty"`
}

// Store holds at most one identity per token.
type Store interface {
	Save(ctx context.Context, token string, id Identity) error
	Get(ctx context.Context, token string) (Identity, error)
	Delete(ctx context.Context, token string) error
}
