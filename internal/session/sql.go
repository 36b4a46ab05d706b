package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore keeps sessions in the portal database (sqlite offline, postgres
// online), schema ensured by db.Open.
type SQLStore struct {
	db  *sql.DB
	ttl time.Duration
}

func NewSQLStore(db *sql.DB, ttl time.Duration) *SQLStore {
	return &SQLStore{db: db, ttl: ttl}
}

func (s *SQLStore) Save(ctx context.Context, token string, id Identity) error {
	b, err := json.Marshal(id)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, identity_json, created_at, expires_at)
		 VALUES ($1,$2,$3,$4)`,
		token, string(b), now.Unix(), now.Add(s.ttl).Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, token string) (Identity, error) {
	var raw string
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT identity_json, expires_at FROM sessions WHERE token=$1`,
		token,
	).Scan(&raw, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Identity{}, ErrNoSession
	case err != nil:
		return Identity{}, err
	}
	if time.Now().Unix() >= expiresAt {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token=$1`, token)
		return Identity{}, ErrNoSession
	}
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil || id.Email == "" {
		// malformed slot resolves to no-session, never a start-up fault
		return Identity{}, ErrNoSession
	}
	return id, nil
}

func (s *SQLStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	return err
}
