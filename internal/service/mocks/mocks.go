// Package mocks - testify моки сервисов для тестов хэндлеров
package mocks

import (
	"context"

	"casino_web/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// AuthService implements service.AuthService for testing
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, creds model.Credentials) (*model.AuthData, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthData), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthData), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthService) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *AuthService) Me(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// FundsService implements service.FundsService for testing
type FundsService struct {
	mock.Mock
}

func (m *FundsService) Adjust(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *FundsService) AdminCredit(ctx context.Context, credit model.AdminCredit) (decimal.Decimal, error) {
	args := m.Called(ctx, credit)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *FundsService) History(ctx context.Context, page model.Page) ([]model.Transaction, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

// SlotService implements service.SlotService for testing
type SlotService struct {
	mock.Mock
}

func (m *SlotService) Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error) {
	args := m.Called(ctx, spinReq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpinResult), args.Error(1)
}

func (m *SlotService) Stats() model.SlotStats {
	args := m.Called()
	return args.Get(0).(model.SlotStats)
}
