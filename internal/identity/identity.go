// Package identity tracks the current viewer and their role. The role
// only gates which mutating operations a presentation layer offers;
// the core never enforces authorization on mutations themselves.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
)

// Role is the viewer's privilege level.
type Role string

// The two recognized roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// CanMutate reports whether a presentation layer should offer
// create/update/delete to this role.
func (r Role) CanMutate() bool {
	return r == RoleAdmin
}

// Viewer is the identity stored for the current session.
type Viewer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// defaultSessionKey matches the key the original UI kept its session
// under.
const defaultSessionKey = "auth_user"

// loggedOut is the stored value for an empty session.
var loggedOut = []byte("null") //nolint:gochecknoglobals // fixed sentinel payload

// Session persists the current viewer in the KV collaborator.
type Session struct {
	kv  persistence.KV
	key string
}

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithKey overrides the KV key the viewer is stored under.
func WithKey(key string) Option {
	return func(s *Session) {
		if key != "" {
			s.key = key
		}
	}
}

// NewSession creates a session on the given KV.
func NewSession(kv persistence.KV, opts ...Option) *Session {
	s := &Session{kv: kv, key: defaultSessionKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login stores the viewer as the current session.
func (s *Session) Login(ctx context.Context, v Viewer) error {
	if v.Email == "" {
		return fmt.Errorf("%w: email", ErrInvalidViewer)
	}
	if v.Role != RoleAdmin && v.Role != RoleUser {
		return fmt.Errorf("%w: role %q", ErrInvalidViewer, v.Role)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal viewer: %w", err)
	}
	return s.kv.Save(ctx, s.key, data)
}

// Logout clears the current session.
func (s *Session) Logout(ctx context.Context) error {
	return s.kv.Save(ctx, s.key, loggedOut)
}

// Current returns the stored viewer, or ErrNoViewer when nobody is
// logged in or the stored payload is unreadable.
func (s *Session) Current(ctx context.Context) (Viewer, error) {
	data, err := s.kv.Load(ctx, s.key, loggedOut)
	if err != nil {
		return Viewer{}, err
	}
	if len(data) == 0 || bytes.Equal(data, loggedOut) {
		return Viewer{}, ErrNoViewer
	}

	var v Viewer
	if err := json.Unmarshal(data, &v); err != nil {
		return Viewer{}, ErrNoViewer
	}
	if v.Email == "" {
		return Viewer{}, ErrNoViewer
	}
	return v, nil
}
