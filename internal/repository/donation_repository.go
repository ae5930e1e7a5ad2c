package repository

import (
	"context"

	"gorm.io/gorm"

	"donorlink/internal/model"
)

// DonationRepository defines donation persistence operations.
type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Donation, error)
	FindByID(ctx context.Context, id uint) (*model.Donation, error)
	List(ctx context.Context) ([]model.Donation, error)
	Delete(ctx context.Context, id uint) error
	DeleteByDonor(ctx context.Context, donorID uint) error
}

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository builds a GORM-backed repository.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// Update writes exactly the supplied columns, zero values included, and
// returns the stored row.
func (r *donationRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Donation, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&model.Donation{ID: id}).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *donationRepository) FindByID(ctx context.Context, id uint) (*model.Donation, error) {
	var donation model.Donation
	if err := r.db.WithContext(ctx).First(&donation, id).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) List(ctx context.Context) ([]model.Donation, error) {
	var donations []model.Donation
	if err := r.db.WithContext(ctx).Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Donation{}, id).Error
}

// DeleteByDonor removes every donation created by the donor. Used by the
// user-deletion cascade.
func (r *donationRepository) DeleteByDonor(ctx context.Context, donorID uint) error {
	return r.db.WithContext(ctx).Where("donor = ?", donorID).Delete(&model.Donation{}).Error
}
