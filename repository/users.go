package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jayagayathricodes/SmartTaskManager/models"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FirstOrCreate(ctx context.Context, user *models.User) error
}

type userStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userStore) FirstOrCreate(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).FirstOrCreate(user, models.User{ID: user.ID}).Error
}
