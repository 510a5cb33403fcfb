package repository

import (
	"context"
	"errors"

	apperrors "problem-selection-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the selection path reacts to
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
)

const (
	constraintTeamActiveSelection = "ux_selections_team_active"
	constraintSelectedCount       = "chk_problems_selected_count"
	constraintSelectionPair       = "chk_teams_selection_pair"
)

// classifyStoreError maps driver errors raised inside a selection transaction onto
// the application taxonomy. Business errors already produced by the transaction
// pass through unchanged.
func classifyStoreError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsConflict(err) || apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == constraintTeamActiveSelection {
			return apperrors.ErrAlreadySelected
		}
	case pgCheckViolation:
		switch pgErr.ConstraintName {
		case constraintSelectedCount:
			return apperrors.ErrCapacityExceeded
		case constraintSelectionPair:
			return apperrors.ErrAlreadySelected
		}
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return apperrors.NewTransientStoreError(op, err)
	case pgQueryCanceled:
		// statement_timeout fires as query_canceled; a cancelled request context does too
		if ctx.Err() == nil {
			return apperrors.NewTransientStoreError(op, err)
		}
	}
	return err
}
