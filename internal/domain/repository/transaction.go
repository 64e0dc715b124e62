package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a user repository bound to the current transaction.
	UserRepo() UserRepository

	// MagicLinkRepo returns a magic link repository bound to the current transaction.
	MagicLinkRepo() MagicLinkRepository
}

// TransactionManager runs multi-step persistence operations atomically.
// The sign-in completion flow (consume link, upsert user) goes through it.
type TransactionManager interface {
	// Execute runs fn within a single transaction. Any error returned by fn
	// rolls the transaction back; a nil return commits it.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
