package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/john-san/rest-api/db"
	"github.com/john-san/rest-api/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	err := r.db.GetDB().Omit(clause.Associations).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email_address = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userPgRepository) Update(user *entities.User) error {
	user.UpdatedAt = time.Now().Format(time.RFC3339)
	err := r.db.GetDB().Omit(clause.Associations).Save(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userPgRepository) Delete(id string) error {
	if err := r.db.GetDB().Where("id = ?", id).Delete(&entities.User{}).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
