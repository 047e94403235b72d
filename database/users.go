package database

import (
	"context"

	"github.com/mariam168/smart-shop-sub001/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns the public fields of every user, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "email", "name", "picture", "provider", "preferred_lang", "created_at").
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

// Update applies the given column updates and returns the fresh row.
func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.WithContext(ctx).Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) ListPending(ctx context.Context) ([]models.Admin, error) {
	var pending []models.Admin
	err := r.db.WithContext(ctx).Where("approved = ?", false).Find(&pending).Error
	return pending, err
}

func (r *AdminRepository) Approve(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AdminRepository) Reject(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.Admin{}).Error
}

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.GuestUser) error {
	return r.db.WithContext(ctx).Create(guest).Error
}
