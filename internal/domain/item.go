package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Item is always owned by exactly one user; UserID is set at creation and
// never changes. Items join lists through list_items, not a foreign key.
type Item struct {
	UUID        string         `gorm:"column:uuid;primaryKey;size:36" json:"uuid"`
	Name        string         `gorm:"size:191;not null" json:"name"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Value       float64        `gorm:"type:decimal(10,2);not null" json:"value"`
	UserID      string         `gorm:"column:user_id;size:36;not null;index" json:"userId"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Item) TableName() string { return "items" }

type ItemRepository interface {
	// Create inserts the item; when listUUID is non-empty a list_items join
	// row is written in the same transaction.
	Create(ctx context.Context, it *Item, listUUID string) error
	Update(ctx context.Context, it *Item) error
	SoftDelete(ctx context.Context, uuid string) error
	FindByUUID(ctx context.Context, uuid string) (*Item, error)
	FindByList(ctx context.Context, listUUID, userID string) ([]Item, error)
	ListByUser(ctx context.Context, userID string, p Page) (Paginated[Item], error)
	Search(ctx context.Context, userID, term string, p Page) (Paginated[Item], error)
}
