package persistence

import (
	"context"

	appidentity "github.com/emprendia/backend/internal/application/identity"
	"github.com/emprendia/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormIdentityTransactionScope implements the identity TransactionScope
// using GORM transactions.
type GormIdentityTransactionScope struct {
	db *gorm.DB
}

// NewGormIdentityTransactionScope creates a new GormIdentityTransactionScope
func NewGormIdentityTransactionScope(db *gorm.DB) *GormIdentityTransactionScope {
	return &GormIdentityTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormIdentityTransactionScope) Execute(ctx context.Context, fn func(repos appidentity.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormIdentityTransactionalRepositories{tx: tx})
	})
}

type gormIdentityTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormIdentityTransactionalRepositories) TenantRepo() identity.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

func (r *gormIdentityTransactionalRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

var _ appidentity.TransactionScope = (*GormIdentityTransactionScope)(nil)
var _ appidentity.TransactionalRepositories = (*gormIdentityTransactionalRepositories)(nil)
