package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	mockRepo "evently/internal/mocks/repository"
	mockSvc "evently/internal/mocks/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceMocks struct {
	accountRepo      *mockRepo.AccountRepository
	txManager        *mockRepo.TransactionManager
	txAccountRepo    *mockRepo.AccountRepository
	txEventRepo      *mockRepo.EventRepository
	txOrderRepo      *mockRepo.OrderRepository
	identityProvider *mockSvc.IdentityProvider
	revalidator      *mockSvc.PageRevalidator
}

func createTestAccountService() (*accountService, *accountServiceMocks) {
	mocks := &accountServiceMocks{
		accountRepo:      &mockRepo.AccountRepository{},
		txAccountRepo:    &mockRepo.AccountRepository{},
		txEventRepo:      &mockRepo.EventRepository{},
		txOrderRepo:      &mockRepo.OrderRepository{},
		identityProvider: &mockSvc.IdentityProvider{},
		revalidator:      &mockSvc.PageRevalidator{},
	}
	mocks.txManager = &mockRepo.TransactionManager{
		Factory: &mockRepo.RepositoryFactory{
			AccountRepo: mocks.txAccountRepo,
			EventRepo:   mocks.txEventRepo,
			OrderRepo:   mocks.txOrderRepo,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:      mocks.accountRepo,
		TxManager:        mocks.txManager,
		IdentityProvider: mocks.identityProvider,
		Revalidator:      mocks.revalidator,
		Logger:           logger,
	})

	return service.(*accountService), mocks
}

func TestAccountService_Create_Success(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()
	accountID := uuid.New()

	input := &usecase.CreateAccountInput{
		IdentityID: "user_abc",
		Email:      "jane@example.com",
		Username:   "jdoe",
		FirstName:  "Jane",
		LastName:   "Doe",
	}

	mocks.accountRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.IdentityID == "user_abc" && a.Email == "jane@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Account).ID = accountID
	}).Return(nil)
	mocks.identityProvider.On("SetAccountMetadata", ctx, "user_abc", accountID).Return(nil)

	account, err := service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)

	mocks.identityProvider.AssertExpectations(t)
}

func TestAccountService_Create_MetadataPushFailureIsNotFatal(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()

	mocks.accountRepo.On("Create", ctx, mock.Anything).Return(nil)
	mocks.identityProvider.On("SetAccountMetadata", ctx, mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable"))

	// The account is persisted; a failed metadata push is logged only.
	account, err := service.Create(ctx, &usecase.CreateAccountInput{IdentityID: "user_abc"})
	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestAccountService_Create_Duplicate(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()

	mocks.accountRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateAccount)

	_, err := service.Create(ctx, &usecase.CreateAccountInput{IdentityID: "user_abc"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)

	mocks.identityProvider.AssertNotCalled(t, "SetAccountMetadata", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_UpdateByIdentityID_Success(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()
	accountID := uuid.New()

	stored := &entity.Account{ID: accountID, IdentityID: "user_abc", Username: "old"}
	mocks.accountRepo.On("FindByIdentityID", ctx, "user_abc").Return(stored, nil)
	mocks.accountRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.ID == accountID && a.Username == "new"
	})).Return(nil)

	account, err := service.UpdateByIdentityID(ctx, "user_abc", &usecase.UpdateAccountInput{Username: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", account.Username)
}

func TestAccountService_UpdateByIdentityID_Missing(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()

	mocks.accountRepo.On("FindByIdentityID", ctx, "user_gone").Return(nil, repository.ErrAccountNotFound)

	_, err := service.UpdateByIdentityID(ctx, "user_gone", &usecase.UpdateAccountInput{})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_DeleteByIdentityID_Cascade(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()
	accountID := uuid.New()

	stored := &entity.Account{ID: accountID, IdentityID: "user_abc"}
	mocks.accountRepo.On("FindByIdentityID", ctx, "user_abc").Return(stored, nil)

	// The entire cascade runs against the transaction-bound repositories.
	mocks.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	mocks.txEventRepo.On("DetachOrganizer", ctx, accountID).Return(nil)
	mocks.txOrderRepo.On("DetachBuyer", ctx, accountID).Return(nil)
	mocks.txAccountRepo.On("Delete", ctx, accountID).Return(nil)
	mocks.revalidator.On("RevalidateAll", ctx).Return(nil)

	account, err := service.DeleteByIdentityID(ctx, "user_abc")
	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)

	mocks.txEventRepo.AssertExpectations(t)
	mocks.txOrderRepo.AssertExpectations(t)
	mocks.txAccountRepo.AssertExpectations(t)
	mocks.revalidator.AssertExpectations(t)
}

func TestAccountService_DeleteByIdentityID_DetachFailureAbortsCascade(t *testing.T) {
	service, mocks := createTestAccountService()
	ctx := context.Background()
	accountID := uuid.New()

	stored := &entity.Account{ID: accountID, IdentityID: "user_abc"}
	mocks.accountRepo.On("FindByIdentityID", ctx, "user_abc").Return(stored, nil)

	mocks.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	mocks.txEventRepo.On("DetachOrganizer", ctx, accountID).Return(errors.New("write conflict"))

	_, err := service.DeleteByIdentityID(ctx, "user_abc")
	assert.Error(t, err)

	// The account row is never deleted when an earlier step fails.
	mocks.txAccountRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mocks.revalidator.AssertNotCalled(t, "RevalidateAll", mock.Anything)
}
