package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"donorlink/internal/cache"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/geocode"
	"donorlink/internal/model"
	"donorlink/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// UserService exposes user domain operations.
type UserService interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	ListRecipients(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uint, fields *model.User) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users     repository.UserRepository
	donations repository.DonationRepository
	geocoder  geocode.Resolver
	cache     *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(
	users repository.UserRepository,
	donations repository.DonationRepository,
	geocoder geocode.Resolver,
	cache *cache.Client,
) UserService {
	return &userService{
		users:     users,
		donations: donations,
		geocoder:  geocoder,
		cache:     cache,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Register creates a user: duplicate email check, then password hash, then
// geocode resolution, then persistence. Registration does not complete until
// coordinates resolve; a geocode failure aborts the whole operation.
func (s *userService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email existence: %w", err)
	}

	if user.Role == "" {
		user.Role = model.RoleDonor
	}
	if user.Organization == "" {
		user.Organization = "Individual Donor"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	coords, err := s.geocoder.Resolve(ctx, geocode.Address{
		Address: user.Address,
		City:    user.City,
		State:   user.State,
		Zip:     user.Zip,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeocodeFailed, err)
	}
	user.Lat = coords.Lat
	user.Lng = coords.Lng

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get fetches a user with donations populated, read-through cached.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListRecipients(ctx context.Context) ([]model.User, error) {
	return s.users.FindByRole(ctx, model.RoleRecipient)
}

// Update merges the submitted fields over the stored record, re-resolves the
// geocode for the effective address, and persists the result. Password and id
// changes are ignored on this path.
func (s *userService) Update(ctx context.Context, id uint, fields *model.User) (*model.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	merged := mergeUser(existing, fields)

	coords, err := s.geocoder.Resolve(ctx, geocode.Address{
		Address: merged.Address,
		City:    merged.City,
		State:   merged.State,
		Zip:     merged.Zip,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGeocodeFailed, err)
	}
	merged.Lat = coords.Lat
	merged.Lng = coords.Lng

	updated, err := s.users.Update(ctx, id, merged)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return updated, nil
}

// Delete removes the user and cascades to every donation they created.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.donations.DeleteByDonor(ctx, id); err != nil {
		return fmt.Errorf("cascade donations: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// mergeUser overlays the non-empty submitted fields on the stored record.
func mergeUser(existing, fields *model.User) *model.User {
	merged := *existing
	merged.Donations = nil
	merged.Received = nil

	if fields.Role != "" {
		merged.Role = fields.Role
	}
	if fields.Organization != "" {
		merged.Organization = fields.Organization
	}
	if fields.FirstName != "" {
		merged.FirstName = fields.FirstName
	}
	if fields.LastName != "" {
		merged.LastName = fields.LastName
	}
	if fields.Email != "" {
		merged.Email = fields.Email
	}
	if fields.Address != "" {
		merged.Address = fields.Address
	}
	if fields.Phone != "" {
		merged.Phone = fields.Phone
	}
	if fields.City != "" {
		merged.City = fields.City
	}
	if fields.State != "" {
		merged.State = fields.State
	}
	if fields.Zip != 0 {
		merged.Zip = fields.Zip
	}
	if fields.DonationType != "" {
		merged.DonationType = fields.DonationType
	}
	if fields.Notes != "" {
		merged.Notes = fields.Notes
	}
	return &merged
}
