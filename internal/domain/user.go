package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// User maps to auth_users. Password and the soft-delete marker are excluded
// from JSON, so marshaling a User yields its public projection.
type User struct {
	UUID      string         `gorm:"column:uuid;primaryKey;size:36" json:"uuid"`
	Name      string         `gorm:"size:64;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string         `gorm:"size:191;not null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "auth_users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	SoftDelete(ctx context.Context, uuid string) error
	FindByUUID(ctx context.Context, uuid string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, p Page) (Paginated[User], error)
	Search(ctx context.Context, term string, p Page) (Paginated[User], error)
}
