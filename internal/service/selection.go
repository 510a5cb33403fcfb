package service

import (
	"context"
	"time"

	"problem-selection-backend/internal/auth"
	apperrors "problem-selection-backend/internal/errors"
	"problem-selection-backend/internal/logger"
	"problem-selection-backend/internal/metrics"
	"problem-selection-backend/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
)

// SelectionService binds teams to problems
type SelectionService struct {
	selectionRepo repository.SelectionRepositoryInterface
	validator     *validator.Validate
	metrics       *metrics.Metrics
	retry         RetryPolicy
	now           func() time.Time
}

// Ensure SelectionService implements SelectionServiceInterface
var _ SelectionServiceInterface = (*SelectionService)(nil)

// RetryPolicy bounds how often a selection is re-run after a transient store error
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// SelectProblemRequest represents the request to select a problem
type SelectProblemRequest struct {
	TeamID    string `json:"teamId" validate:"required,max=40" example:"TEAM001"`
	ProblemID string `json:"problemId" validate:"required,max=64" example:"PS001"`
}

// SelectionResponse represents a committed selection
type SelectionResponse struct {
	ProblemID     string    `json:"problemId" example:"PS001"`
	ProblemTitle  string    `json:"problemTitle" example:"AI-Powered Healthcare Assistant"`
	SelectionTime time.Time `json:"selectionTime"`
}

// NewSelectionService creates a new SelectionService
func NewSelectionService(selectionRepo repository.SelectionRepositoryInterface, validator *validator.Validate, policy RetryPolicy, m *metrics.Metrics) *SelectionService {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &SelectionService{
		selectionRepo: selectionRepo,
		validator:     validator,
		metrics:       m,
		retry:         policy,
		now:           time.Now,
	}
}

// SelectProblem binds the calling team to a problem. Business conflicts are
// returned as they are; only transient store errors are retried, each retry
// re-running every check from the start.
func (s *SelectionService) SelectProblem(ctx context.Context, identity *auth.TeamIdentity, req *SelectProblemRequest) (*SelectionResponse, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_ref":    req.TeamID,
		"problem_ref": req.ProblemID,
	})

	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordSelection(metrics.OutcomeInvalid)
		return nil, validationError(err)
	}

	if identity == nil || req.TeamID != identity.TeamCode {
		s.metrics.RecordSelection(metrics.OutcomeForbidden)
		log.Warn("selection attempted for another team")
		return nil, apperrors.ErrIdentityMismatch
	}

	attempts := 0
	var commit *repository.SelectionCommit
	operation := func() error {
		attempts++
		result, err := s.selectionRepo.Commit(ctx, req.TeamID, req.ProblemID, s.now().UTC())
		if err != nil {
			if apperrors.IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		commit = result
		return nil
	}
	notify := func(err error, wait time.Duration) {
		s.metrics.RecordSelectionRetry()
		log.WithError(err).WithFields(map[string]interface{}{
			"attempt": attempts,
			"wait":    wait.String(),
		}).Warn("transient store error, retrying selection")
	}

	if err := backoff.RetryNotify(operation, s.newBackOff(ctx), notify); err != nil {
		outcome := selectionOutcome(err)
		s.metrics.RecordSelection(outcome)
		entry := log.WithField("outcome", outcome).WithField("attempts", attempts)
		switch outcome {
		case metrics.OutcomeError:
			entry.WithError(err).Error("selection failed")
		case metrics.OutcomeTransient:
			entry.WithError(err).Warn("selection gave up after transient store errors")
		default:
			entry.Info("selection rejected")
		}
		return nil, err
	}

	s.metrics.RecordSelection(metrics.OutcomeSelected)
	log.WithFields(map[string]interface{}{
		"problem":  commit.Problem.ProblemCode,
		"attempts": attempts,
	}).Info("problem selected")

	return &SelectionResponse{
		ProblemID:     commit.Problem.ProblemCode,
		ProblemTitle:  commit.Problem.Title,
		SelectionTime: commit.Selection.SelectionTime,
	}, nil
}

func (s *SelectionService) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.BaseDelay
	b.MaxInterval = 20 * s.retry.BaseDelay
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.retry.MaxAttempts-1)), ctx)
}

func selectionOutcome(err error) string {
	switch {
	case apperrors.IsConflict(err):
		return string(apperrors.ConflictReasonOf(err))
	case apperrors.IsNotFound(err):
		return metrics.OutcomeNotFound
	case apperrors.IsTransient(err):
		return metrics.OutcomeTransient
	default:
		return metrics.OutcomeError
	}
}
