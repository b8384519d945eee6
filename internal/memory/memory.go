// Package memory stores append-only chat transcripts keyed by session id.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ShinnPerfume/internal/kv"
)

const KeyPrefix = "chat_memory:"

var ErrInvalidArgument = errors.New("invalid argument")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Session struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
	UpdatedAt string    `json:"updatedAt"`
}

func Key(sessionID string) string { return KeyPrefix + sessionID }

type Service struct {
	Store kv.Store
	Log   *zap.Logger
	// MaxMessages keeps only the newest N messages per session; zero keeps
	// everything.
	MaxMessages int
	Now         func() time.Time
}

func NewService(store kv.Store, log *zap.Logger, maxMessages int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Store: store, Log: log, MaxMessages: maxMessages, Now: time.Now}
}

// Get returns the stored messages of a session. An unknown session is an
// empty transcript, not an error.
func (s *Service) Get(ctx context.Context, sessionID string) ([]Message, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: Session ID is required", ErrInvalidArgument)
	}

	raw, found, err := s.Store.Get(ctx, Key(sessionID))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", Key(sessionID), err)
	}
	if !found {
		s.Log.Debug("no memory for session", zap.String("session_id", sessionID))
		return []Message{}, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode %s: %w", Key(sessionID), err)
	}
	if sess.Messages == nil {
		sess.Messages = []Message{}
	}
	return sess.Messages, nil
}

// Save appends msgs to the session transcript in one atomic store update, so
// concurrent saves to the same session never drop each other's messages.
func (s *Service) Save(ctx context.Context, sessionID string, msgs []Message) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("%w: Session ID is required", ErrInvalidArgument)
	}
	if msgs == nil {
		return Session{}, fmt.Errorf("%w: Messages must be an array", ErrInvalidArgument)
	}

	var saved Session
	_, err := s.Store.Update(ctx, Key(sessionID), func(old []byte, found bool) ([]byte, error) {
		sess := Session{Messages: []Message{}}
		if found {
			if err := json.Unmarshal(old, &sess); err != nil {
				return nil, fmt.Errorf("decode stored session: %w", err)
			}
		}

		sess.SessionID = sessionID
		sess.Messages = append(sess.Messages, msgs...)
		if s.MaxMessages > 0 && len(sess.Messages) > s.MaxMessages {
			sess.Messages = sess.Messages[len(sess.Messages)-s.MaxMessages:]
		}
		sess.UpdatedAt = s.Now().UTC().Format(time.RFC3339Nano)

		saved = sess
		return json.Marshal(sess)
	})
	if err != nil {
		return Session{}, fmt.Errorf("save %s: %w", Key(sessionID), err)
	}

	s.Log.Info("memory saved",
		zap.String("session_id", sessionID),
		zap.Int("added", len(msgs)),
		zap.Int("total", len(saved.Messages)),
	)
	return saved, nil
}

// Clear deletes every stored session and returns how many were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	entries, err := s.Store.ScanPrefix(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", KeyPrefix, err)
	}

	removed := 0
	for _, e := range entries {
		if err := s.Store.Delete(ctx, e.Key); err != nil {
			return removed, fmt.Errorf("delete %s: %w", e.Key, err)
		}
		removed++
	}
	return removed, nil
}
