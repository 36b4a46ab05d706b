package portal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/auy-connect/student-portal/internal/audit"
	"github.com/auy-connect/student-portal/internal/metrics"
	"github.com/auy-connect/student-portal/internal/sheets"
)

type Fetcher interface {
	FetchStudent(ctx context.Context, email string) (*sheets.StudentRecord, error)
}

// Service owns the per-session record snapshot: one fetch per login, the
// bundle replaced wholesale, never merged. Fetches are serialized per email
// so a stale response can never overwrite a newer one.
type Service struct {
	fetcher   Fetcher
	demoDelay time.Duration
	events    *audit.EventRepo // optional

	mu    sync.Mutex
	loads map[string]*load
}

type load struct {
	mu     sync.Mutex
	bundle Bundle
	ok     bool
}

func NewService(fetcher Fetcher, demoDelay time.Duration, events *audit.EventRepo) *Service {
	return &Service{
		fetcher:   fetcher,
		demoDelay: demoDelay,
		events:    events,
		loads:     map[string]*load{},
	}
}

// Load returns the cached bundle for email, fetching it first if needed.
// A failed fetch is not cached: the next call is a fresh attempt, matching
// the reload-to-retry behavior of the pages.
func (s *Service) Load(ctx context.Context, email string) (Bundle, error) {
	entry := s.entry(email)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.ok {
		return entry.bundle, nil
	}

	start := time.Now()
	bundle, err := s.fetch(ctx, email)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Bundle{}, err
	}
	entry.bundle = bundle
	entry.ok = true
	return bundle, nil
}

// Invalidate drops the snapshot for email. Any fetch still in flight writes
// to the detached entry and its result is discarded.
func (s *Service) Invalidate(email string) {
	s.mu.Lock()
	delete(s.loads, email)
	s.mu.Unlock()
}

func (s *Service) entry(email string) *load {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.loads[email]
	if !ok {
		e = &load{}
		s.loads[email] = e
	}
	return e
}

func (s *Service) fetch(ctx context.Context, email string) (Bundle, error) {
	raw, err := s.fetcher.FetchStudent(ctx, email)
	switch {
	case err == nil:
		metrics.RecordFetches.WithLabelValues("ok").Inc()
		s.record(ctx, audit.TypeRecordFetch, email)
		return Derive(raw, email), nil

	case errors.Is(err, sheets.ErrNotConfigured):
		// Expected condition: substitute the demo record after a short
		// delay so the loading state is visibly exercised.
		select {
		case <-time.After(s.demoDelay):
		case <-ctx.Done():
			return Bundle{}, ctx.Err()
		}
		metrics.RecordFetches.WithLabelValues("demo").Inc()
		s.record(ctx, audit.TypeDemoFallback, email)
		b := Derive(sheets.DemoRecord(), email)
		b.UsingMockData = true
		return b, nil

	default:
		metrics.RecordFetches.WithLabelValues(fetchResult(err)).Inc()
		s.record(ctx, audit.TypeFetchError, email)
		return Bundle{}, err
	}
}

func fetchResult(err error) string {
	var se *sheets.StatusError
	var re *sheets.RemoteError
	switch {
	case errors.As(err, &se):
		return "http_error"
	case errors.As(err, &re):
		return "remote_error"
	default:
		return "network_error"
	}
}

func (s *Service) record(ctx context.Context, typ, email string) {
	if s.events == nil {
		return
	}
	// best effort; the audit trail never blocks a page load
	_ = s.events.Append(ctx, audit.Event{Type: typ, Key: email})
}
