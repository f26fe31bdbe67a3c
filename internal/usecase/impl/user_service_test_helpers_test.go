package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mangahub/internal/domain/entity"
	"mangahub/internal/domain/repository"
	mockRepo "mangahub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes the next Execute call run its callback against the returned factory
// and return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	return factory
}

func newTestUser(role entity.Role) *entity.User {
	birth := time.Date(1990, time.March, 3, 0, 0, 0, 0, time.UTC)

	return &entity.User{
		ID:                uuid.New(),
		Name:              "Aki",
		LastName:          "Tanaka",
		UserName:          "aki_t",
		Email:             "aki@example.com",
		Password:          "hashed",
		BirthDate:         &birth,
		Role:              role,
		IsActive:          true,
		ShowMatureContent: true,
		PreferredLanguage: "en",
		Theme:             entity.ThemeLight,
	}
}
