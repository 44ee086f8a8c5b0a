package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/vaultgate/vaultgate/internal/database"
	apperrors "github.com/vaultgate/vaultgate/internal/errors"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// MySQLRegistryRepository persists the administrator identity for MySQL.
type MySQLRegistryRepository struct {
	db *sql.DB
}

// NewMySQLRegistryRepository creates a new MySQLRegistryRepository
func NewMySQLRegistryRepository(db *sql.DB) *MySQLRegistryRepository {
	return &MySQLRegistryRepository{
		db: db,
	}
}

// GetAdministrator retrieves the current administrator identity
func (r *MySQLRegistryRepository) GetAdministrator(ctx context.Context) (*domain.Registry, error) {
	var addressHex string
	registry := &domain.Registry{}
	querier := database.GetTx(ctx, r.db)

	query := `SELECT address, updated_at FROM registry_administrator WHERE id = 1`

	err := querier.QueryRowContext(ctx, query).Scan(&addressHex, &registry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistryNotInitialized
		}
		return nil, apperrors.Wrap(err, "failed to get administrator")
	}

	administrator, err := domain.ParseAddress(addressHex)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode stored administrator")
	}
	registry.Administrator = administrator

	return registry, nil
}

// CreateAdministrator writes the initial administrator identity
func (r *MySQLRegistryRepository) CreateAdministrator(ctx context.Context, administrator domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO registry_administrator (id, address, created_at, updated_at)
			  VALUES (1, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, administrator.String())
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrRegistryAlreadyInitialized
		}
		return apperrors.Wrap(err, "failed to create administrator")
	}
	return nil
}

// UpdateAdministrator replaces the administrator identity. Callers read the
// current administrator in the same transaction, so the row is known to exist;
// rows-affected is not checked because MySQL reports 0 for identical values.
func (r *MySQLRegistryRepository) UpdateAdministrator(ctx context.Context, administrator domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE registry_administrator SET address = ?, updated_at = NOW() WHERE id = 1`

	_, err := querier.ExecContext(ctx, query, administrator.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update administrator")
	}
	return nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
