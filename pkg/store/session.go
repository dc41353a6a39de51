package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"badger-buds-be/internal/pkg/logger"
)

// Session keys holding the two selection lists.
const (
	SavedCatIdsKey   = "savedCatIds"
	AdoptedCatIdsKey = "adoptedCatIds"
)

// Backend is raw session-scoped key-value storage.
// Implementations: go-cache (single instance) and Redis.
type Backend interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string) error
}

// ListStore persists named lists of identifiers for one session.
type ListStore interface {
	// ReadList never fails: absent or unreadable data is an empty list.
	ReadList(ctx context.Context, key string) []string
	WriteList(ctx context.Context, key string, ids []string) error
}

// SessionState is the ListStore of a single browser session.
type SessionState struct {
	backend   Backend
	sessionID string
	logger    logger.ILogger
}

func NewSessionState(backend Backend, sessionID string, log logger.ILogger) *SessionState {
	return &SessionState{
		backend:   backend,
		sessionID: sessionID,
		logger:    log,
	}
}

func (s *SessionState) SessionID() string {
	return s.sessionID
}

func (s *SessionState) ReadList(ctx context.Context, key string) []string {
	raw, found, err := s.backend.Get(ctx, s.sessionID, key)
	if err != nil {
		s.logger.Warn("SESSION", "Failed to read session list, treating as empty", map[string]interface{}{
			"session_id": s.sessionID,
			"key":        key,
			"error":      err.Error(),
		})
		return []string{}
	}
	if !found {
		return []string{}
	}

	ids, err := DecodeList(raw)
	if err != nil {
		s.logger.Warn("SESSION", "Malformed session list, treating as empty", map[string]interface{}{
			"session_id": s.sessionID,
			"key":        key,
			"error":      err.Error(),
		})
		return []string{}
	}
	return ids
}

func (s *SessionState) WriteList(ctx context.Context, key string, ids []string) error {
	raw, err := EncodeList(ids)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.sessionID, key, raw); err != nil {
		return fmt.Errorf("write session list %s: %w", key, err)
	}
	return nil
}

// Clear drops every list of the session.
func (s *SessionState) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, s.sessionID)
}

// EncodeList serializes ids as a JSON array, keeping order and duplicates.
func EncodeList(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a JSON array of identifiers.
// Numbers are accepted and kept in their literal decimal form, so lists written
// by numeric-id clients still match. Anything else is an error.
func DecodeList(raw string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode list: trailing data")
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			ids = append(ids, v)
		case json.Number:
			ids = append(ids, v.String())
		default:
			return nil, fmt.Errorf("decode list: element %d has unsupported type %T", i, item)
		}
	}
	return ids, nil
}
