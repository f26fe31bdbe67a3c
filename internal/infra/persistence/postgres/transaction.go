// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"mangahub/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewMangaRepository creates a new manga repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewMangaRepository() repository.MangaRepository {
	return NewMangaRepository(f.tx)
}

// NewChapterRepository creates a new chapter repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewChapterRepository() repository.ChapterRepository {
	return NewChapterRepository(f.tx)
}

// NewPageRepository creates a new page repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPageRepository() repository.PageRepository {
	return NewPageRepository(f.tx)
}

// NewTagRepository creates a new tag repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTagRepository() repository.TagRepository {
	return NewTagRepository(f.tx)
}

// NewCommentRepository creates a new comment repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return NewCommentRepository(f.tx)
}

// NewRatingRepository creates a new rating repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRatingRepository() repository.RatingRepository {
	return NewRatingRepository(f.tx)
}

// NewFavoriteRepository creates a new favorite repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NewHistoryRepository creates a new reading history repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewHistoryRepository() repository.HistoryRepository {
	return NewHistoryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back before re-panicking so the connection is returned clean.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error alongside the rollback failure.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
