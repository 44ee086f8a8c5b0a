package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultgate/vaultgate/internal/database"
	apperrors "github.com/vaultgate/vaultgate/internal/errors"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// MySQLMembershipRepository handles membership persistence for MySQL
type MySQLMembershipRepository struct {
	db *sql.DB
}

// NewMySQLMembershipRepository creates a new MySQLMembershipRepository
func NewMySQLMembershipRepository(db *sql.DB) *MySQLMembershipRepository {
	return &MySQLMembershipRepository{
		db: db,
	}
}

// Upsert writes the allow/deny state for an account, unconditionally overwriting
// any existing entry.
func (r *MySQLMembershipRepository) Upsert(ctx context.Context, account domain.Address, allowed bool) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO memberships (account, allowed, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())
			  ON DUPLICATE KEY UPDATE allowed = VALUES(allowed), updated_at = NOW()`

	_, err := querier.ExecContext(ctx, query, account.String(), allowed)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert membership")
	}
	return nil
}

// Get retrieves the membership entry for an account.
// Returns ErrMembershipNotFound when no explicit entry exists.
func (r *MySQLMembershipRepository) Get(ctx context.Context, account domain.Address) (*domain.Membership, error) {
	var accountHex string
	membership := &domain.Membership{}
	querier := database.GetTx(ctx, r.db)

	query := `SELECT account, allowed, created_at, updated_at FROM memberships WHERE account = ?`

	err := querier.QueryRowContext(ctx, query, account.String()).Scan(
		&accountHex, &membership.Allowed, &membership.CreatedAt, &membership.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get membership")
	}

	parsed, err := domain.ParseAddress(accountHex)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode stored account")
	}
	membership.Account = parsed

	return membership, nil
}

// List retrieves explicit membership entries ordered by account, for tooling reconciliation.
func (r *MySQLMembershipRepository) List(ctx context.Context, limit, offset int) ([]*domain.Membership, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT account, allowed, created_at, updated_at FROM memberships
			  ORDER BY account ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list memberships")
	}
	defer rows.Close() //nolint:errcheck

	var memberships []*domain.Membership
	for rows.Next() {
		var accountHex string
		membership := &domain.Membership{}

		err := rows.Scan(&accountHex, &membership.Allowed, &membership.CreatedAt, &membership.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan membership")
		}

		parsed, err := domain.ParseAddress(accountHex)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to decode stored account")
		}
		membership.Account = parsed

		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list memberships")
	}

	return memberships, nil
}
