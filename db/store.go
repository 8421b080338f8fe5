// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/ecosync/session"
)

// SessionStore keeps session state as JSON rows in app_session.
type SessionStore struct {
	db      *sqlx.DB
	dialect Dialect
}

func NewSessionStore(db *sql.DB, dialect Dialect) *SessionStore {
	return &SessionStore{db: sqlx.NewDb(db, string(dialect)), dialect: dialect}
}

func (s *SessionStore) Load(ctx context.Context, id string) (*session.State, error) {
	var payload string
	err := s.db.GetContext(ctx, &payload, s.dialect.rebind(`
		SELECT payload FROM app_session WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var st session.State
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &st, nil
}

// Save replaces the row in a transaction. Delete-then-insert works the same
// on every dialect, unlike the various upsert syntaxes.
func (s *SessionStore) Save(ctx context.Context, id string, st *session.State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`
		DELETE FROM app_session WHERE id = ?
	`), id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`
		INSERT INTO app_session (id, user_role, current_view, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, string(st.Role), string(st.View), string(payload), st.UpdatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SessionStore) Prune(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.rebind(`
		DELETE FROM app_session WHERE updated_at < ?
	`), before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned sessions: %w", err)
	}
	return int(n), nil
}

var _ session.Store = (*SessionStore)(nil)
