package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Profile holds one user's durable statistics and in-flight session state.
// The JSON layout matches the persisted user data file, so the file must
// round-trip through load/save without losing fields or mangling non-ASCII
// text.
type Profile struct {
	UserName         string    `json:"user_name"`
	TotalTests       int       `json:"total_tests"`
	CorrectAnswers   int       `json:"correct_answers"`
	IncorrectAnswers int       `json:"incorrect_answers"`
	Accuracy         float64   `json:"accuracy"`
	LastActive       time.Time `json:"last_active"`
	Mistakes         []int     `json:"mistakes"`
	CurrentExample   *int      `json:"current_example,omitempty"`
}

// RecalcAccuracy recomputes the stored accuracy from the integer counters.
// The stored value is a cache and is never trusted as input.
func (p *Profile) RecalcAccuracy() {
	p.Accuracy = p.ComputedAccuracy()
}

// ComputedAccuracy derives accuracy from the counters.
func (p *Profile) ComputedAccuracy() float64 {
	if p.TotalTests == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalTests) * 100
}

func clone(p *Profile) Profile {
	c := *p
	if p.Mistakes != nil {
		c.Mistakes = append([]int{}, p.Mistakes...)
	}
	if p.CurrentExample != nil {
		v := *p.CurrentExample
		c.CurrentExample = &v
	}
	return c
}

// Store is the durable user mapping: an in-memory map guarded by one mutex,
// persisted as a whole-file JSON rewrite. A save failure is logged and the
// in-memory state stays authoritative until the next successful save.
type Store struct {
	mu    sync.Mutex
	path  string
	users map[string]*Profile
	log   *zap.Logger
}

// Open loads persisted state from path. A missing or malformed file yields
// an empty store, never an error.
func Open(path string, log *zap.Logger) *Store {
	s := &Store{
		path:  path,
		users: make(map[string]*Profile),
		log:   log,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("cannot read user data file, starting empty",
				zap.String("file", s.path), zap.Error(err))
		}
		return
	}

	var users map[string]*Profile
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn("user data file is malformed, starting empty",
			zap.String("file", s.path), zap.Error(err))
		return
	}
	if users != nil {
		s.users = users
	}
}

// Save writes the full snapshot to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.users); err != nil {
		s.log.Error("cannot serialize user data", zap.Error(err))
		return err
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		s.log.Error("cannot write user data file",
			zap.String("file", s.path), zap.Error(err))
		return err
	}
	return nil
}

// Ensure returns the profile for id, creating a zeroed one on first contact.
// The returned value is a copy; the second result reports whether the
// profile was just created.
func (s *Store) Ensure(id, name string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.users[id]; ok {
		return clone(p), false
	}

	p := &Profile{
		UserName:   name,
		LastActive: time.Now().UTC().Truncate(time.Second),
		Mistakes:   []int{},
	}
	s.users[id] = p
	_ = s.saveLocked()
	return clone(p), true
}

// Update runs fn on the profile inside the critical section. When fn
// reports a mutation, the store is saved synchronously. Returns false if
// the profile does not exist.
func (s *Store) Update(id string, fn func(*Profile) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[id]
	if !ok {
		return false
	}
	if fn(p) {
		_ = s.saveLocked()
	}
	return true
}

// View runs fn on a read-only snapshot of the profile. Returns false if
// the profile does not exist.
func (s *Store) View(id string, fn func(Profile)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[id]
	if !ok {
		return false
	}
	fn(clone(p))
	return true
}

// Len reports the number of registered users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// TotalTests reports the number of answered questions across all users.
func (s *Store) TotalTests() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, p := range s.users {
		total += p.TotalTests
	}
	return total
}

// AutoSave persists the store on every tick until ctx is cancelled.
// It is a backstop for the synchronous save after each mutation.
func (s *Store) AutoSave(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Save(); err == nil {
				s.log.Info("user data autosaved", zap.Int("users", s.Len()))
			}
		}
	}
}

// Flush performs the best-effort final save on shutdown.
func (s *Store) Flush() {
	if err := s.Save(); err != nil {
		s.log.Error("final save failed, unsaved mutations are lost", zap.Error(err))
		return
	}
	s.log.Info("user data saved")
}
