package service

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"donorlink/internal/geocode"
	"donorlink/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, user *model.User) (*model.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDonationRepository is a mock implementation of repository.DonationRepository.
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Donation, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindByID(ctx context.Context, id uint) (*model.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}

func (m *MockDonationRepository) List(ctx context.Context) ([]model.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donation), args.Error(1)
}

func (m *MockDonationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteByDonor(ctx context.Context, donorID uint) error {
	args := m.Called(ctx, donorID)
	return args.Error(0)
}

// MockActivityLogRepository is a mock implementation of repository.ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) CreateBatch(ctx context.Context, entries []model.ActivityLog) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// stubResolver returns fixed coordinates, or an error when failing is set.
type stubResolver struct {
	coords  geocode.Coordinates
	failing bool
	lastReq geocode.Address
}

func (s *stubResolver) Resolve(ctx context.Context, addr geocode.Address) (geocode.Coordinates, error) {
	s.lastReq = addr
	if s.failing {
		return geocode.Coordinates{}, errors.New("provider unavailable")
	}
	return s.coords, nil
}
