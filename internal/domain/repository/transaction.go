package repository

import "context"

// TransactionManager runs a unit of work in a single database transaction.
// The transaction is rolled back when fn returns an error and committed otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProjectRepository() ProjectRepository
}
