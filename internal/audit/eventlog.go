package audit

import (
	"context"
	"database/sql"
	"time"
)

// Event types recorded by the portal.
const (
	TypeLogin        = "login"
	TypeLogout       = "logout"
	TypeRecordFetch  = "record_fetch"
	TypeDemoFallback = "demo_fallback"
	TypeFetchError   = "fetch_error"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string // natural key: student email
	DataJSON  string
	CreatedAt int64
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if e.DataJSON == "" {
		e.DataJSON = "{}"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
