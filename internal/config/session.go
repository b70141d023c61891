package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// StoredSession is the login state persisted between CLI runs.
type StoredSession struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func sessionPath(stateDir string) string {
	return filepath.Join(stateDir, "session.json")
}

// SaveSession writes the session file under the state directory. The file is
// user-readable only since it holds the bearer token.
func SaveSession(stateDir string, session StoredSession) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(sessionPath(stateDir), data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// LoadSession reads the persisted session. A missing file is not an error; it
// returns an empty session.
func LoadSession(stateDir string) (StoredSession, error) {
	data, err := os.ReadFile(sessionPath(stateDir))
	if errors.Is(err, os.ErrNotExist) {
		return StoredSession{}, nil
	}
	if err != nil {
		return StoredSession{}, fmt.Errorf("reading session: %w", err)
	}
	var session StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		return StoredSession{}, fmt.Errorf("decoding session: %w", err)
	}
	return session, nil
}

// ClearSession removes the persisted session, used on logout and on expiry.
func ClearSession(stateDir string) error {
	err := os.Remove(sessionPath(stateDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
