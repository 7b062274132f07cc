package quiz

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"commabot/internal/examples"
	"commabot/internal/storage"
)

// Result is the outcome of judging one answer.
type Result struct {
	Index            int
	Example          examples.Example
	UserAnswer       bool
	IsCorrect        bool
	TotalTests       int
	CorrectAnswers   int
	IncorrectAnswers int
	Accuracy         float64
}

// Stats is a read-only projection of a profile's counters.
type Stats struct {
	DisplayName      string
	TotalTests       int
	CorrectAnswers   int
	IncorrectAnswers int
	Accuracy         float64
	MistakeCount     int
	LastActive       time.Time
}

// Mistake is one entry of the mistake log resolved against the bank.
type Mistake struct {
	Index   int
	Example examples.Example
}

// Engine is the session/scoring state machine. Per user it moves
// Idle -> (IssueQuestion) -> AwaitingAnswer -> (SubmitAnswer) -> Idle;
// issuing over a pending question overwrites it without penalty.
type Engine struct {
	store       *storage.Store
	bank        *examples.Bank
	log         *zap.Logger
	avoidRepeat bool
	randInt     func(n int) int

	mu         sync.Mutex
	lastIssued map[string]int
}

// New builds an engine over the given store and bank. With avoidRepeat set,
// a freshly drawn index is rejected while it equals the previous one for
// that user (only meaningful when the bank holds more than one example).
func New(store *storage.Store, bank *examples.Bank, log *zap.Logger, avoidRepeat bool) *Engine {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		store:       store,
		bank:        bank,
		log:         log,
		avoidRepeat: avoidRepeat,
		randInt:     r.Intn,
		lastIssued:  make(map[string]int),
	}
}

// EnsureProfile returns the existing profile or creates a zeroed one.
// Creation is idempotent: repeat calls never touch the counters.
func (e *Engine) EnsureProfile(userID, displayName string) (storage.Profile, bool) {
	profile, created := e.store.Ensure(userID, displayName)
	if created {
		e.log.Info("new user registered",
			zap.String("user_id", userID), zap.String("name", displayName))
	}
	return profile, created
}

// IssueQuestion draws an example uniformly over the bank and stores its
// index as the user's pending question. Returns ErrNotFound if the profile
// does not exist.
func (e *Engine) IssueQuestion(userID string) (int, examples.Example, error) {
	idx := e.pick(userID)
	ex, err := e.bank.Get(idx)
	if err != nil {
		return 0, examples.Example{}, err
	}

	ok := e.store.Update(userID, func(p *storage.Profile) bool {
		p.CurrentExample = &idx
		return true
	})
	if !ok {
		return 0, examples.Example{}, ErrNotFound
	}

	e.mu.Lock()
	e.lastIssued[userID] = idx
	e.mu.Unlock()

	return idx, ex, nil
}

func (e *Engine) pick(userID string) int {
	idx := e.randInt(e.bank.Count())
	if !e.avoidRepeat || e.bank.Count() < 2 {
		return idx
	}

	e.mu.Lock()
	last, seen := e.lastIssued[userID]
	e.mu.Unlock()

	for seen && idx == last {
		idx = e.randInt(e.bank.Count())
	}
	return idx
}

// SubmitAnswer judges the pending question against the user's answer,
// updates the counters, the mistake log, and the activity timestamp, and
// clears the pending question. Returns ErrNoPendingQuestion when no
// question is in flight; no counters are touched on that path.
func (e *Engine) SubmitAnswer(userID string, saidCommaNeeded bool) (Result, error) {
	var res Result
	var opErr error

	ok := e.store.Update(userID, func(p *storage.Profile) bool {
		if p.CurrentExample == nil {
			opErr = ErrNoPendingQuestion
			return false
		}
		idx := *p.CurrentExample

		ex, err := e.bank.Get(idx)
		if err != nil {
			// Stale index, e.g. the bank shrank between restarts.
			// Drop the pending question and abort just this request.
			e.log.Error("pending question index is out of range",
				zap.String("user_id", userID), zap.Int("index", idx), zap.Error(err))
			p.CurrentExample = nil
			opErr = err
			return true
		}

		p.CurrentExample = nil
		p.TotalTests++

		isCorrect := saidCommaNeeded == ex.NeedsComma
		if isCorrect {
			p.CorrectAnswers++
		} else {
			p.IncorrectAnswers++
			if !containsInt(p.Mistakes, idx) {
				p.Mistakes = append(p.Mistakes, idx)
			}
		}

		p.RecalcAccuracy()
		p.LastActive = time.Now().UTC().Truncate(time.Second)

		res = Result{
			Index:            idx,
			Example:          ex,
			UserAnswer:       saidCommaNeeded,
			IsCorrect:        isCorrect,
			TotalTests:       p.TotalTests,
			CorrectAnswers:   p.CorrectAnswers,
			IncorrectAnswers: p.IncorrectAnswers,
			Accuracy:         p.Accuracy,
		}
		return true
	})
	if !ok {
		return Result{}, ErrNotFound
	}
	if opErr != nil {
		return Result{}, opErr
	}
	return res, nil
}

// AbandonQuestion drops a pending question without judging it. No-op for
// unknown users or when nothing is pending.
func (e *Engine) AbandonQuestion(userID string) {
	e.store.Update(userID, func(p *storage.Profile) bool {
		if p.CurrentExample == nil {
			return false
		}
		p.CurrentExample = nil
		return true
	})
}

// GetStats returns the counters for userID. Accuracy is recomputed from
// the counters rather than read from the stored cache.
func (e *Engine) GetStats(userID string) (Stats, error) {
	var stats Stats
	ok := e.store.View(userID, func(p storage.Profile) {
		stats = Stats{
			DisplayName:      p.UserName,
			TotalTests:       p.TotalTests,
			CorrectAnswers:   p.CorrectAnswers,
			IncorrectAnswers: p.IncorrectAnswers,
			Accuracy:         p.ComputedAccuracy(),
			MistakeCount:     len(p.Mistakes),
			LastActive:       p.LastActive,
		}
	})
	if !ok {
		return Stats{}, ErrNotFound
	}
	return stats, nil
}

// GetMistakes returns the most recent limit entries of the mistake log
// (oldest of the retained window first) resolved against the bank, plus
// the total mistake count. Entries whose index no longer resolves are
// skipped. Returns ErrNotFound for an unknown user.
func (e *Engine) GetMistakes(userID string, limit int) ([]Mistake, int, error) {
	if limit <= 0 {
		limit = 10
	}

	var indices []int
	var total int
	ok := e.store.View(userID, func(p storage.Profile) {
		total = len(p.Mistakes)
		indices = p.Mistakes
		if len(indices) > limit {
			indices = indices[len(indices)-limit:]
		}
	})
	if !ok {
		return nil, 0, ErrNotFound
	}

	mistakes := make([]Mistake, 0, len(indices))
	for _, idx := range indices {
		ex, err := e.bank.Get(idx)
		if err != nil {
			e.log.Warn("skipping unresolvable mistake index",
				zap.String("user_id", userID), zap.Int("index", idx))
			continue
		}
		mistakes = append(mistakes, Mistake{Index: idx, Example: ex})
	}
	return mistakes, total, nil
}

// ClearMistakes empties the user's mistake log, leaving the counters
// untouched. Returns ErrNotFound for an unknown user.
func (e *Engine) ClearMistakes(userID string) error {
	ok := e.store.Update(userID, func(p *storage.Profile) bool {
		p.Mistakes = []int{}
		return true
	})
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Aggregates returns the read-only counters consumed by the health harness.
func (e *Engine) Aggregates() (users, exampleCount, totalTests int) {
	return e.store.Len(), e.bank.Count(), e.store.TotalTests()
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
