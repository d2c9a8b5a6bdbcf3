package impl

import (
	"context"
	"log/slog"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	accountRepo      repository.AccountRepository
	txManager        repository.TransactionManager
	identityProvider service.IdentityProvider
	revalidator      service.PageRevalidator
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	TxManager        repository.TransactionManager
	IdentityProvider service.IdentityProvider
	Revalidator      service.PageRevalidator
	Logger           *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:      params.AccountRepo,
		txManager:        params.TxManager,
		identityProvider: params.IdentityProvider,
		revalidator:      params.Revalidator,
		logger:           params.Logger,
	}
}

// Create inserts an account on first sign-up and pushes the internal id back
// to the identity provider as public metadata.
func (s *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	account := &entity.Account{
		IdentityID: input.IdentityID,
		Email:      input.Email,
		Username:   input.Username,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		PhotoURL:   input.PhotoURL,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	// The account is persisted; a failed metadata push must not make the
	// provider redeliver the creation event, so it is only logged. Session
	// tokens issued before the next successful push carry no account id.
	if err := s.identityProvider.SetAccountMetadata(ctx, account.IdentityID, account.ID); err != nil && s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Failed to push account id to identity provider",
			slog.String("identityID", account.IdentityID),
			slog.String("accountID", account.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return account, nil
}

// GetByID returns one account.
func (s *accountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateByIdentityID patches the profile attributes of the account linked to
// the given external identity.
func (s *accountService) UpdateByIdentityID(ctx context.Context, identityID string, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	account, err := s.accountRepo.FindByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by identity")
	}

	account.Username = input.Username
	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.PhotoURL = input.PhotoURL

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	return account, nil
}

// DeleteByIdentityID removes the account and detaches its references inside a
// single transaction: events lose their organizer, orders lose their buyer,
// then the account row goes. The events and orders themselves survive.
func (s *accountService) DeleteByIdentityID(ctx context.Context, identityID string) (*entity.Account, error) {
	account, err := s.accountRepo.FindByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by identity")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventRepository().DetachOrganizer(ctx, account.ID); err != nil {
			return err
		}
		if err := repoFactory.NewOrderRepository().DetachBuyer(ctx, account.ID); err != nil {
			return err
		}

		return repoFactory.NewAccountRepository().Delete(ctx, account.ID)
	})
	if err != nil {
		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	// A deleted account can appear on listings anywhere, so every cached
	// page is dropped. Failure leaves stale pages, not stale data.
	if s.revalidator != nil {
		if err := s.revalidator.RevalidateAll(ctx); err != nil && s.logger != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to invalidate cached pages after account deletion",
				slog.String("accountID", account.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return account, nil
}
