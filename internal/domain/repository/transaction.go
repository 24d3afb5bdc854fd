package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. The application layer receives one inside TransactionManager's
// callback and must use it for every store access that has to be atomic.
type RepositoryFactory interface {
	UserRepo() UserRepository
	BookRepo() BookRepository
	CollectionRepo() CollectionRepository
}

// TransactionManager runs a unit of work within a single database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it, and
	// commits. Any error from fn rolls the transaction back and is returned
	// unchanged.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
