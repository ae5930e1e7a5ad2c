package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"donorlink/internal/auth"
	"donorlink/internal/model"
)

// testValidator mirrors the router's validator wiring for handler tests.
type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListRecipients(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uint, fields *model.User) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDonationService is a mock implementation of service.DonationService.
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) List(ctx context.Context) ([]model.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donation), args.Error(1)
}

func (m *MockDonationService) Get(ctx context.Context, id uint) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) Create(ctx context.Context, caller *auth.Claims, donation *model.Donation) (*model.Donation, error) {
	args := m.Called(ctx, caller, donation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) Update(ctx context.Context, actorID uint, id uint, fields map[string]interface{}) (*model.Donation, error) {
	args := m.Called(ctx, actorID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationService) Delete(ctx context.Context, caller *auth.Claims, id uint) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}
