package user

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrDuplicatePlayerCode = errors.New("playercode already exists")
)

// UserRepository defines all database operations for user management.
type UserRepository interface {
	Create(u *User) error
	GetByID(id uint) (*User, error)
	GetByPlayerCode(code string) (*User, error)
	GetAll(page, limit int) ([]User, int64, error)
	Update(u *User) error
	UpdateStatus(id uint, status Status) error
	Delete(id uint) error
	Leaderboard(orderBy string, limit int) ([]User, error)
	ResetWeeklyPoints() error
	ResetMonthlyPoints() error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a user after verifying the playercode is not taken.
// The unique index is the real guarantee; the pre-check exists to surface
// a precise error instead of a driver constraint failure.
func (r *userRepository) Create(u *User) error {
	var count int64
	if err := r.db.Model(&User{}).Where("playercode = ?", u.PlayerCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicatePlayerCode
	}
	return r.db.Create(u).Error
}

func (r *userRepository) GetByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByPlayerCode(code string) (*User, error) {
	var u User
	if err := r.db.Where("playercode = ?", code).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetAll(page, limit int) ([]User, int64, error) {
	var users []User
	var total int64

	if err := r.db.Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update saves a full user record, re-checking playercode uniqueness when
// the code moved to a value another user already holds.
func (r *userRepository) Update(u *User) error {
	var count int64
	if err := r.db.Model(&User{}).
		Where("playercode = ? AND id <> ?", u.PlayerCode, u.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicatePlayerCode
	}
	return r.db.Save(u).Error
}

func (r *userRepository) UpdateStatus(id uint, status Status) error {
	result := r.db.Model(&User{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user and all their predictions in one transaction.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM predictions WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Leaderboard returns users ordered by one of the points columns.
func (r *userRepository) Leaderboard(orderBy string, limit int) ([]User, error) {
	column := "points"
	switch orderBy {
	case "weekly":
		column = "weekly_points"
	case "monthly":
		column = "monthly_points"
	}
	if limit <= 0 {
		limit = 50
	}

	var users []User
	err := r.db.Where("status = ?", StatusActive).
		Order(column + " DESC, name ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ResetWeeklyPoints() error {
	return r.db.Model(&User{}).Where("1 = 1").Update("weekly_points", 0).Error
}

func (r *userRepository) ResetMonthlyPoints() error {
	return r.db.Model(&User{}).Where("1 = 1").Update("monthly_points", 0).Error
}
