package websocket

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/meetly/meeting_backend/models"
)

// ErrNotAuthenticated is returned when a connection has no valid user identity.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionDirectory binds live connections to authenticated users. A session
// token is minted per connection and destroyed on disconnect. A user holds at
// most one session at a time: reconnecting overwrites the previous mapping.
type SessionDirectory struct {
	mu        sync.RWMutex
	sessions  map[string]*models.User // session token -> user
	userToken map[uint]string         // user ID -> session token
}

func NewSessionDirectory() *SessionDirectory {
	return &SessionDirectory{
		sessions:  make(map[string]*models.User),
		userToken: make(map[uint]string),
	}
}

// Connect allocates a fresh session token for the user and registers the
// binding in both directions.
func (d *SessionDirectory) Connect(user *models.User) (string, error) {
	if user == nil {
		return "", ErrNotAuthenticated
	}

	token := uuid.NewString()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[token] = user
	d.userToken[user.ID] = token

	return token, nil
}

// Disconnect removes the binding for token. Calling it for an unknown or
// already removed token is a no-op, since disconnect can be reached from
// multiple paths.
func (d *SessionDirectory) Disconnect(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.sessions[token]
	if !ok {
		return
	}
	delete(d.sessions, token)

	// Only clear the reverse mapping if it still points at this session;
	// a reconnect may already have replaced it.
	if d.userToken[user.ID] == token {
		delete(d.userToken, user.ID)
	}
}

// Resolve returns the user bound to token, if any.
func (d *SessionDirectory) Resolve(token string) (*models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.sessions[token]
	return user, ok
}
