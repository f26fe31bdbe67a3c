package impl

import (
	"context"
	"testing"
	"time"

	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	mockRepo "mangahub/internal/mocks/repository"
	mockSvc "mangahub/internal/mocks/service"
	mockUsecase "mangahub/internal/mocks/usecase"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	locations *mockUsecase.MockLocationUsecase
	hasher    *mockSvc.MockPasswordHasher
	storage   *mockSvc.MockStorageProvider
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	locations := mockUsecase.NewMockLocationUsecase(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	storage := mockSvc.NewMockStorageProvider(t)

	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Locations: locations,
		Hasher:    hasher,
		Storage:   storage,
		Logger:    newDiscardLogger(),
	})
	svc.(*userService).now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		locations: locations,
		hasher:    hasher,
		storage:   storage,
	}
}

// withUserTx opens an expected transaction whose factory hands out a fresh user repository.
func (fx userServiceFixtures) withUserTx(t *testing.T) *mockRepo.MockUserRepository {
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := expectTransaction(t, fx.txManager)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	return txUserRepo
}

func TestUserService_List_AppliesDefaults(t *testing.T) {
	fx := createTestUserService(t)
	users := []*entity.User{newTestUser(entity.RoleUser), newTestUser(entity.RoleAdmin)}

	fx.userRepo.EXPECT().
		List(mock.Anything, repository.UserListFilter{
			PageRequest: repository.PageRequest{Page: 1, Limit: 10},
			Search:      "aki",
			Sort:        repository.UserSortCreatedAt,
			Order:       repository.SortDesc,
		}).
		Return(users, int64(23), nil)

	page, err := fx.service.List(context.Background(), &usecase.ListUsersQuery{Search: "  aki "})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Create(t *testing.T) {
	t.Run("minor account starts without mature content", func(t *testing.T) {
		fx := createTestUserService(t)
		birth := "2012-01-01"

		fx.hasher.EXPECT().Hash("Secret1!").Return("hashed", nil)
		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByEmail(mock.Anything, "kid@example.com").Return(nil, repository.ErrNotFound)
		txUserRepo.EXPECT().FindByUserName(mock.Anything, "kid").Return(nil, repository.ErrNotFound)
		txUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.Create(context.Background(), &usecase.CreateUserInput{
			Name:      "Kid",
			LastName:  "Reader",
			UserName:  "kid",
			Email:     "Kid@Example.com",
			Password:  "Secret1!",
			BirthDate: &birth,
		})

		require.NoError(t, err)
		assert.False(t, user.ShowMatureContent)
		assert.Equal(t, "kid@example.com", user.Email)
		assert.True(t, user.IsActive)
	})

	t.Run("user name already in use", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)
		txUserRepo.EXPECT().FindByUserName(mock.Anything, "kid").Return(&entity.User{}, nil)

		_, err := fx.service.Create(context.Background(), &usecase.CreateUserInput{
			Name: "Kid", LastName: "Reader", UserName: "kid", Email: "kid@example.com", Password: "Secret1!",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserNameInUse)
	})
}

func TestUserService_Patch_OnlyChecksChangedValues(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser(entity.RoleUser)
	sameEmail := "AKI@example.com"
	newUserName := "aki_new"

	txUserRepo := fx.withUserTx(t)
	txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	txUserRepo.EXPECT().FindByUserName(mock.Anything, "aki_new").Return(nil, repository.ErrNotFound)
	txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	updated, err := fx.service.Patch(context.Background(), user.ID, &usecase.PatchUserInput{
		Email:    &sameEmail,
		UserName: &newUserName,
	})

	require.NoError(t, err)
	assert.Equal(t, "aki_new", updated.UserName)
	assert.Equal(t, "aki@example.com", updated.Email)
	txUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_Update_ResolvesAddress(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser(entity.RoleUser)
	cityID := 7
	address := &entity.AddressInput{CityID: &cityID}
	resolved := "Osaka, Osaka, Japan"

	fx.locations.EXPECT().ValidateAndBuildAddress(mock.Anything, address).Return(&resolved, nil)
	txUserRepo := fx.withUserTx(t)
	txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	updated, err := fx.service.Update(context.Background(), user.ID, &usecase.UpdateUserInput{
		Name:     "Aki",
		LastName: "Tanaka",
		UserName: "aki_t",
		Email:    "aki@example.com",
		Address:  address,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Address)
	assert.Equal(t, resolved, *updated.Address)
}

func TestUserService_Update_InvalidAddressStopsEarly(t *testing.T) {
	fx := createTestUserService(t)
	stateID, cityID := 1, 7

	fx.locations.EXPECT().
		ValidateAndBuildAddress(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCityStateMismatch)

	_, err := fx.service.Update(context.Background(), uuid.New(), &usecase.UpdateUserInput{
		Name: "Aki", LastName: "Tanaka", UserName: "aki_t", Email: "aki@example.com",
		Address: &entity.AddressInput{StateID: &stateID, CityID: &cityID},
	})

	assert.ErrorIs(t, err, domainerrors.ErrCityStateMismatch)
}

func TestUserService_UpdatePreferences_MatureContentRequiresAdult(t *testing.T) {
	fx := createTestUserService(t)
	minor := newTestUser(entity.RoleUser)
	birth := fixedNow.AddDate(-15, 0, 0)
	minor.BirthDate = &birth
	minor.ShowMatureContent = false

	txUserRepo := fx.withUserTx(t)
	txUserRepo.EXPECT().FindByID(mock.Anything, minor.ID).Return(minor, nil)

	_, err := fx.service.UpdatePreferences(context.Background(), minor.ID, &usecase.UpdatePreferencesInput{
		ShowMatureContent: ptr(true),
	})

	assert.ErrorIs(t, err, domainerrors.ErrMatureContentNotAllowed)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser(entity.RoleUser)
	dark := entity.ThemeDark

	txUserRepo := fx.withUserTx(t)
	txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	updated, err := fx.service.UpdatePreferences(context.Background(), user.ID, &usecase.UpdatePreferencesInput{
		Theme:             &dark,
		PreferredLanguage: ptr("es"),
		ShowMatureContent: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, updated.Theme)
	assert.Equal(t, "es", updated.PreferredLanguage)
	assert.False(t, updated.ShowMatureContent)
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("confirmation mismatch", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
			CurrentPassword: "Old1!", NewPassword: "NewPass1!", ConfirmNewPassword: "Other1!",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("Wrong1!", "hashed").Return(false)

		err := fx.service.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "Wrong1!", NewPassword: "NewPass1!", ConfirmNewPassword: "NewPass1!",
		})

		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	})

	t.Run("unchanged password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("Same1!ab", "hashed").Return(true)

		err := fx.service.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "Same1!ab", NewPassword: "Same1!ab", ConfirmNewPassword: "Same1!ab",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordUnchanged)
	})

	t.Run("success clears refresh token", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)
		token := "refresh"
		user.RefreshToken = &token

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("Old1!abc", "hashed").Return(true)
		fx.hasher.EXPECT().Hash("NewPass1!").Return("new-hash", nil)
		txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)
		txUserRepo.EXPECT().SetRefreshToken(mock.Anything, user.ID, (*string)(nil)).Return(nil)

		err := fx.service.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "Old1!abc", NewPassword: "NewPass1!", ConfirmNewPassword: "NewPass1!",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.Password)
		assert.Nil(t, user.RefreshToken)
		require.NotNil(t, user.LastPasswordChange)
		assert.Equal(t, fixedNow, *user.LastPasswordChange)
	})
}

func TestUserService_Verify(t *testing.T) {
	t.Run("sets verification", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)

		verified, err := fx.service.Verify(context.Background(), user.ID)

		require.NoError(t, err)
		assert.True(t, verified.IsVerified)
		assert.Equal(t, fixedNow, *verified.EmailVerifiedAt)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)
		user.IsVerified = true

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		_, err := fx.service.Verify(context.Background(), user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyVerified)
	})
}

func TestUserService_SoftDelete(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		id := uuid.New()

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNotFound)

		err := fx.service.SoftDelete(context.Background(), id)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("existing user", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newTestUser(entity.RoleUser)

		txUserRepo := fx.withUserTx(t)
		txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		txUserRepo.EXPECT().SoftDelete(mock.Anything, user.ID).Return(nil)

		require.NoError(t, fx.service.SoftDelete(context.Background(), user.ID))
	})
}

func TestUserService_UpdateAvatar(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser(entity.RoleUser)
	file := &usecase.FileUpload{Filename: "me.png", ContentType: "image/png", Size: 3, Data: []byte{1, 2, 3}}

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.storage.EXPECT().
		Upload(mock.Anything, file.Data, mock.MatchedBy(func(opts service.UploadOptions) bool {
			return opts.Folder == "users/"+user.ID.String() && opts.GenerateThumbnail
		})).
		Return(&service.UploadResult{URL: "https://cdn.example.com/avatar.jpg"}, nil)
	txUserRepo := fx.withUserTx(t)
	txUserRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil)

	updated, err := fx.service.UpdateAvatar(context.Background(), user.ID, file)

	require.NoError(t, err)
	require.NotNil(t, updated.ProfilePictureURL)
	assert.Equal(t, "https://cdn.example.com/avatar.jpg", *updated.ProfilePictureURL)
}

func TestUserService_UpdateBanner_StorageFailure(t *testing.T) {
	fx := createTestUserService(t)
	user := newTestUser(entity.RoleUser)

	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.storage.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("bucket unavailable"))
	fx.storage.EXPECT().Name().Return("memory")

	_, err := fx.service.UpdateBanner(context.Background(), user.ID, &usecase.FileUpload{Data: []byte{1}})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestUserService_UpdateAvatar_NoFile(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.UpdateAvatar(context.Background(), uuid.New(), &usecase.FileUpload{})

	assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
}
