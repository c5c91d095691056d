package repository

import (
	"context"

	"inventra/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for users.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UserRepository interface {
	// Create inserts the user in a single statement; the UNIQUE constraint
	// on username makes duplicate registration surface as
	// gorm.ErrDuplicatedKey instead of requiring a pre-check query.
	Create(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
