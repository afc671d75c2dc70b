// Package score keeps the best survival time across games.
//
// Records are YAML documents stored through gdata, which picks the
// platform's data directory. A Store without a manager keeps the record in
// memory only, so a badge without writable storage still plays normally.
package score

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "score"
	recordProperty = "best"
)

// Testable time function
var TimeNow = func() time.Time { return time.Now().UTC() }

// Record is the persisted high score
type Record struct {
	Best      time.Duration `yaml:"best"`
	Games     int           `yaml:"games"`
	LastCause string        `yaml:"last_cause,omitempty"`
	BestCause string        `yaml:"best_cause,omitempty"`
	UpdatedAt time.Time     `yaml:"updated_at"`
}

// Keeper records finished games
type Keeper interface {
	Submit(elapsed time.Duration, cause string) (Record, bool, error)
	Best() time.Duration
}

var _ Keeper = (*Store)(nil)

// Store loads and saves the Record
type Store struct {
	manager *gdata.Manager // nil means memory only
	record  Record
}

// Open opens gdata storage for appName and loads the saved record. Storage
// failures are logged and produce a memory-only store.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("Score storage unavailable: %v (scores will not be saved)", err)
		return NewStore(nil)
	}
	return NewStore(m)
}

// NewStore wraps an open manager, which may be nil
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if _, err := s.Load(); err != nil {
		log.Printf("Error loading score: %v. Starting fresh.", err)
	}
	return s
}

// Persistent reports whether records survive a restart
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load reads the saved record. A missing record is not an error.
func (s *Store) Load() (Record, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return s.record, nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return s.record, fmt.Errorf("read score: %w", err)
	}

	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return s.record, fmt.Errorf("unmarshal score: %w", err)
	}
	s.record = r
	return r, nil
}

// Record returns the current record
func (s *Store) Record() Record {
	return s.record
}

// Best returns the best survival time so far
func (s *Store) Best() time.Duration {
	return s.record.Best
}

// Submit records a finished game and reports whether it set a new best.
// The in-memory record is updated even when saving fails.
func (s *Store) Submit(elapsed time.Duration, cause string) (Record, bool, error) {
	newBest := elapsed > s.record.Best
	s.record.Games++
	s.record.LastCause = cause
	if newBest {
		s.record.Best = elapsed
		s.record.BestCause = cause
	}
	s.record.UpdatedAt = TimeNow()

	if newBest {
		log.Printf("New best survival time: %s", elapsed)
	}

	if err := s.save(); err != nil {
		return s.record, newBest, err
	}
	return s.record, newBest, nil
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}
