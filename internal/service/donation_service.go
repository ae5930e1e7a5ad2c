package service

import (
	"context"
	"fmt"
	"time"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/model"
	"donorlink/internal/repository"
)

// DonationService exposes donation domain operations.
type DonationService interface {
	List(ctx context.Context) ([]model.Donation, error)
	Get(ctx context.Context, id uint) (*model.Donation, error)
	Create(ctx context.Context, caller *auth.Claims, donation *model.Donation) (*model.Donation, error)
	Update(ctx context.Context, actorID uint, id uint, fields map[string]interface{}) (*model.Donation, error)
	Delete(ctx context.Context, caller *auth.Claims, id uint) error
}

type donationService struct {
	donations repository.DonationRepository
	activity  repository.ActivityLogRepository
	// Channel for async activity logging
	logChannel chan model.ActivityLog
}

// NewDonationService creates a donation service and starts its activity log
// worker.
func NewDonationService(
	donations repository.DonationRepository,
	activity repository.ActivityLogRepository,
) DonationService {
	service := &donationService{
		donations:  donations,
		activity:   activity,
		logChannel: make(chan model.ActivityLog, 100),
	}

	go service.logWorker(context.Background())

	return service
}

// logWorker batches activity log writes so donation mutations never wait on
// the log table.
func (s *donationService) logWorker(ctx context.Context) {
	batch := make([]model.ActivityLog, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-s.logChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.activity.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 10 {
				_ = s.activity.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.activity.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *donationService) logActivity(donationID, actorID uint, action, detail string) {
	entry := model.ActivityLog{
		DonationID: donationID,
		ActorID:    actorID,
		Action:     action,
		Detail:     detail,
	}
	select {
	case s.logChannel <- entry:
	default:
		// channel full, write synchronously rather than lose the entry
		_ = s.activity.Create(context.Background(), &entry)
	}
}

func (s *donationService) List(ctx context.Context) ([]model.Donation, error) {
	return s.donations.List(ctx)
}

func (s *donationService) Get(ctx context.Context, id uint) (*model.Donation, error) {
	return s.donations.FindByID(ctx, id)
}

// Create stores a donation on behalf of the caller. The donor is always the
// authenticated caller and the pickup address comes from the caller's
// profile; neither is trusted from the request body.
func (s *donationService) Create(ctx context.Context, caller *auth.Claims, donation *model.Donation) (*model.Donation, error) {
	donation.ID = 0
	donation.Donor = caller.User.ID
	donation.Recipient = model.UnassignedRecipient
	donation.PickupAddress = fmt.Sprintf("%s, %s, %s, %d",
		caller.User.Address, caller.User.City, caller.User.State, caller.User.Zip)

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	s.logActivity(donation.ID, caller.User.ID, model.ActivityCreated, donation.Category)
	return donation, nil
}

// Update writes the submitted columns, zero values included, so an admin can
// clear an amount or reset a recipient to unassigned. Authorization (admin
// only) is enforced at the handler; the request type cannot express id or
// donor, so neither can reach the update set.
func (s *donationService) Update(ctx context.Context, actorID uint, id uint, fields map[string]interface{}) (*model.Donation, error) {
	updated, err := s.donations.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update donation: %w", err)
	}

	s.logActivity(id, actorID, model.ActivityUpdated, "")
	return updated, nil
}

// Delete removes a donation if the caller is its donor or an admin.
func (s *donationService) Delete(ctx context.Context, caller *auth.Claims, id uint) error {
	donation, err := s.donations.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load donation: %w", err)
	}

	if !auth.Authorize(caller, auth.ActionManageDonation, donation.Donor) {
		return apperrors.ErrUnauthorized
	}

	if err := s.donations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}

	s.logActivity(id, caller.User.ID, model.ActivityDeleted, donation.Category)
	return nil
}
