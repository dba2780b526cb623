package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence surface the ledger mutates: one UserRatingData
// blob per user id, replaced whole on write. Get returns (nil, nil) when no
// record exists; absence is not an error.
type Store interface {
	Get(ctx context.Context, userID string) (*UserRatingData, error)
	Put(ctx context.Context, userID string, record *UserRatingData) error
	Delete(ctx context.Context, userID string) error
}

// Service owns rating-ledger mutations. The backing store has no concurrency
// control of its own (last write wins on the whole record), so the service
// serializes mutations per user id with a keyed mutex: at most one in-flight
// mutation per user.
type Service struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// Injected for deterministic tests
	now   func() time.Time
	newID func() string
}

// NewService creates a ledger service backed by the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// userLock returns the mutex serializing mutations for a user id.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// load reads the user's record, materializing the zero-state when absent.
func (s *Service) load(ctx context.Context, op, userID string) (*UserRatingData, error) {
	record, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: op, UserID: userID, Cause: err}
	}
	if record == nil {
		record = newUserRatingData(userID)
	}
	return record, nil
}

// save writes the record back whole.
func (s *Service) save(ctx context.Context, op string, record *UserRatingData) error {
	if err := s.store.Put(ctx, record.UserID, record); err != nil {
		return &PersistenceError{Op: op, UserID: record.UserID, Cause: err}
	}
	return nil
}

// appendHistory appends one audit entry to the record.
func (s *Service) appendHistory(record *UserRatingData, change float64, reason, description string) {
	record.RatingHistory = append(record.RatingHistory, RatingHistoryEntry{
		ID:          s.newID(),
		UserID:      record.UserID,
		Change:      change,
		Reason:      reason,
		Description: description,
		Timestamp:   s.now(),
	})
}

// ImportSkillsFromResume adds unknown skills from a resume at rating 0.0 with
// zero counters. Skills already present (case-insensitive) are untouched, so
// the operation is idempotent on the skill set. But every call appends a
// history entry, even a numeric no-op, to keep the audit log complete.
func (s *Service) ImportSkillsFromResume(ctx context.Context, userID string, skills []string) (*UserRatingData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.load(ctx, "import skills", userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	imported := make([]string, 0, len(skills))
	for _, skill := range skills {
		if record.findSkill(skill) >= 0 {
			continue
		}
		record.Skills = append(record.Skills, SkillRating{
			Skill:       skill,
			Rating:      0.0,
			LastUpdated: now,
		})
		imported = append(imported, skill)
	}

	record.recomputeOverallRating()
	record.LastUpdated = now

	description := "Resume uploaded; no new skills"
	if len(imported) > 0 {
		description = fmt.Sprintf("Resume uploaded; imported skills: %s", strings.Join(imported, ", "))
	}
	s.appendHistory(record, 0, ReasonResumeUpload, description)

	if err := s.save(ctx, "import skills", record); err != nil {
		return nil, err
	}
	return record, nil
}

// RecordProjectSuccess credits each project skill: existing skills gain up to
// successStep (never past MaxSkillRating) and a completed-project count;
// unknown skills are created at newSkillSuccessRating with one completion.
// The ledger-level completed counter increments once per call.
func (s *Service) RecordProjectSuccess(ctx context.Context, userID string, projectSkills []string) (*UserRatingData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.load(ctx, "record project success", userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	totalIncrease := 0.0
	for _, skill := range projectSkills {
		if i := record.findSkill(skill); i >= 0 {
			delta := min(successStep, MaxSkillRating-record.Skills[i].Rating)
			record.Skills[i].Rating += delta
			record.Skills[i].ProjectsCompleted++
			record.Skills[i].LastUpdated = now
			totalIncrease += delta
			continue
		}
		record.Skills = append(record.Skills, SkillRating{
			Skill:             skill,
			Rating:            newSkillSuccessRating,
			ProjectsCompleted: 1,
			LastUpdated:       now,
		})
		totalIncrease += newSkillSuccessRating
	}

	record.TotalProjectsCompleted++
	record.recomputeOverallRating()
	record.LastUpdated = now

	s.appendHistory(record, totalIncrease, ReasonProjectCompleted,
		fmt.Sprintf("Project completed; skills: %s", strings.Join(projectSkills, ", ")))

	if err := s.save(ctx, "record project success", record); err != nil {
		return nil, err
	}
	return record, nil
}

// RecordProjectFailure debits each project skill already in the ledger by up
// to failureStep, never below MinSkillRating. Skills absent from the ledger
// are silently ignored; failure never creates a skill. The ledger-level
// failed counter increments once per call.
func (s *Service) RecordProjectFailure(ctx context.Context, userID string, projectSkills []string) (*UserRatingData, error) {
	return s.recordProjectSetback(ctx, userID, projectSkills, failureStep,
		"record project failure",
		fmt.Sprintf("Project failed; skills: %s", strings.Join(projectSkills, ", ")))
}

// RecordProjectCancellation debits like a failure but with the smaller
// cancellationStep cap. Cancellations are bucketed with failures in both the
// counters and the history reason code.
func (s *Service) RecordProjectCancellation(ctx context.Context, userID string, projectSkills []string) (*UserRatingData, error) {
	return s.recordProjectSetback(ctx, userID, projectSkills, cancellationStep,
		"record project cancellation",
		fmt.Sprintf("Project cancelled; skills: %s", strings.Join(projectSkills, ", ")))
}

// recordProjectSetback is the shared failure/cancellation path: per-skill
// decrease capped at step, total failed counter +1, one history entry with
// the failure reason code and a negative change.
func (s *Service) recordProjectSetback(ctx context.Context, userID string, projectSkills []string, step float64, op, description string) (*UserRatingData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.load(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	totalDecrease := 0.0
	for _, skill := range projectSkills {
		i := record.findSkill(skill)
		if i < 0 {
			continue
		}
		delta := min(step, record.Skills[i].Rating)
		record.Skills[i].Rating -= delta
		record.Skills[i].ProjectsFailed++
		record.Skills[i].LastUpdated = now
		totalDecrease += delta
	}

	record.TotalProjectsFailed++
	record.recomputeOverallRating()
	record.LastUpdated = now

	s.appendHistory(record, -totalDecrease, ReasonProjectFailed, description)

	if err := s.save(ctx, op, record); err != nil {
		return nil, err
	}
	return record, nil
}

// RecomputeOverallRating re-derives the overall rating from stored skill
// ratings and persists the record only when the value changed. It reports
// whether a write happened. Used by the backfill tool after formula changes;
// no history entry is appended because no skill rating moves.
func (s *Service) RecomputeOverallRating(ctx context.Context, userID string) (bool, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.store.Get(ctx, userID)
	if err != nil {
		return false, &PersistenceError{Op: "recompute overall rating", UserID: userID, Cause: err}
	}
	if record == nil {
		return false, nil
	}

	before := record.OverallRating
	record.recomputeOverallRating()
	if record.OverallRating == before {
		return false, nil
	}

	record.LastUpdated = s.now()
	if err := s.save(ctx, "recompute overall rating", record); err != nil {
		return false, err
	}
	return true, nil
}

// ClearHistory truncates the rating history to empty. Skills, counters, and
// the derived overall rating are untouched.
func (s *Service) ClearHistory(ctx context.Context, userID string) (*UserRatingData, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.load(ctx, "clear history", userID)
	if err != nil {
		return nil, err
	}

	record.RatingHistory = []RatingHistoryEntry{}
	record.LastUpdated = s.now()

	if err := s.save(ctx, "clear history", record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteAll removes the user's entire rating record. Subsequent reads behave
// as the zero-state.
func (s *Service) DeleteAll(ctx context.Context, userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Delete(ctx, userID); err != nil {
		return &PersistenceError{Op: "delete rating data", UserID: userID, Cause: err}
	}
	return nil
}

// Get returns the user's full rating record, or the zero-state when none is
// stored. Reading never materializes a record in the store.
func (s *Service) Get(ctx context.Context, userID string) (*UserRatingData, error) {
	return s.load(ctx, "get rating data", userID)
}
