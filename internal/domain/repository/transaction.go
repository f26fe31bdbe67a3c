package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewMangaRepository returns a MangaRepository instance bound to the current transaction.
	NewMangaRepository() MangaRepository

	// NewChapterRepository returns a ChapterRepository instance bound to the current transaction.
	NewChapterRepository() ChapterRepository

	// NewPageRepository returns a PageRepository instance bound to the current transaction.
	NewPageRepository() PageRepository

	// NewTagRepository returns a TagRepository instance bound to the current transaction.
	NewTagRepository() TagRepository

	// NewCommentRepository returns a CommentRepository instance bound to the current transaction.
	NewCommentRepository() CommentRepository

	// NewRatingRepository returns a RatingRepository instance bound to the current transaction.
	NewRatingRepository() RatingRepository

	// NewFavoriteRepository returns a FavoriteRepository instance bound to the current transaction.
	NewFavoriteRepository() FavoriteRepository

	// NewHistoryRepository returns a HistoryRepository instance bound to the current transaction.
	NewHistoryRepository() HistoryRepository
}
