package identity

import (
	"context"

	"github.com/emprendia/backend/internal/domain/identity"
)

// TransactionScope provides transactional access to the identity
// repositories. Signup creates the tenant and its owner user atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the identity repositories
// within a transaction.
type TransactionalRepositories interface {
	TenantRepo() identity.TenantRepository
	UserRepo() identity.UserRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the repositories are mocks.
type NoOpTransactionScope struct {
	tenantRepo identity.TenantRepository
	userRepo   identity.UserRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(tenantRepo identity.TenantRepository, userRepo identity.UserRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{tenantRepo: tenantRepo, userRepo: userRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) TenantRepo() identity.TenantRepository { return s.tenantRepo }
func (s *NoOpTransactionScope) UserRepo() identity.UserRepository     { return s.userRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
