// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"evently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PaymentGateway is a mock implementation of service.PaymentGateway.
type PaymentGateway struct {
	mock.Mock
}

func (m *PaymentGateway) CreateCheckoutSession(ctx context.Context, spec *service.CheckoutSessionSpec) (*service.CheckoutSession, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.CheckoutSession), args.Error(1)
}

// PaymentWebhookVerifier is a mock implementation of service.PaymentWebhookVerifier.
type PaymentWebhookVerifier struct {
	mock.Mock
}

func (m *PaymentWebhookVerifier) VerifyEvent(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	args := m.Called(payload, signatureHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.PaymentEvent), args.Error(1)
}

// IdentityWebhookVerifier is a mock implementation of service.IdentityWebhookVerifier.
type IdentityWebhookVerifier struct {
	mock.Mock
}

func (m *IdentityWebhookVerifier) Verify(payload []byte, headers service.IdentityWebhookHeaders) (*service.IdentityEvent, error) {
	args := m.Called(payload, headers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.IdentityEvent), args.Error(1)
}

// IdentityProvider is a mock implementation of service.IdentityProvider.
type IdentityProvider struct {
	mock.Mock
}

func (m *IdentityProvider) SetAccountMetadata(ctx context.Context, identityID string, accountID uuid.UUID) error {
	args := m.Called(ctx, identityID, accountID)

	return args.Error(0)
}

// SessionVerifier is a mock implementation of service.SessionVerifier.
type SessionVerifier struct {
	mock.Mock
}

func (m *SessionVerifier) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// PageRevalidator is a mock implementation of service.PageRevalidator.
type PageRevalidator struct {
	mock.Mock
}

func (m *PageRevalidator) Revalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)

	return args.Error(0)
}

func (m *PageRevalidator) RevalidateAll(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GenerateTicketQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *QRCodeService) ParseTicketQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}
