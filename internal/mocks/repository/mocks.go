// Package repository provides testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a mock implementation of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) FindByIdentityID(ctx context.Context, identityID string) (*entity.Account, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// CategoryRepository is a mock implementation of repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

// EventRepository is a mock implementation of repository.EventRepository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Event), args.Get(1).(int64), args.Error(2)
}

func (m *EventRepository) DetachOrganizer(ctx context.Context, organizerID uuid.UUID) error {
	args := m.Called(ctx, organizerID)

	return args.Error(0)
}

// OrderRepository is a mock implementation of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, buyerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error) {
	args := m.Called(ctx, eventID, buyerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderRow), args.Error(1)
}

func (m *OrderRepository) DetachBuyer(ctx context.Context, buyerID uuid.UUID) error {
	args := m.Called(ctx, buyerID)

	return args.Error(0)
}

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the configured Factory so tests can
// observe the operations performed inside the transaction.
type TransactionManager struct {
	mock.Mock

	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
type RepositoryFactory struct {
	AccountRepo *AccountRepository
	EventRepo   *EventRepository
	OrderRepo   *OrderRepository
}

func (f *RepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.AccountRepo
}

func (f *RepositoryFactory) NewEventRepository() repository.EventRepository {
	return f.EventRepo
}

func (f *RepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}
