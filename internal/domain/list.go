package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// List holds its items in memory after hydration from list_items; gorm does
// not manage the association (`gorm:"-"`), the repository does.
type List struct {
	UUID        string         `gorm:"column:uuid;primaryKey;size:36" json:"uuid"`
	Name        string         `gorm:"size:191;not null" json:"name"`
	Description string         `gorm:"size:255" json:"description"`
	UserID      string         `gorm:"column:user_id;size:36;not null;index" json:"userId"`
	Items       []Item         `gorm:"-" json:"items"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (List) TableName() string { return "lists" }

// Contains reports whether the hydrated item set already holds itemUUID.
func (l *List) Contains(itemUUID string) bool {
	for _, it := range l.Items {
		if it.UUID == itemUUID {
			return true
		}
	}
	return false
}

// ListItem is the list<->item join row. The composite primary key enforces
// that an item appears in a list at most once.
type ListItem struct {
	ListID string `gorm:"column:list_id;primaryKey;size:36"`
	ItemID string `gorm:"column:item_id;primaryKey;size:36"`
}

func (ListItem) TableName() string { return "list_items" }

type ListRepository interface {
	// Create writes the list row and any pre-attached join rows in one
	// transaction, so a partial failure cannot leave an orphaned list.
	Create(ctx context.Context, l *List) error
	Update(ctx context.Context, l *List) error
	SoftDelete(ctx context.Context, uuid string) error
	FindByUUID(ctx context.Context, uuid string) (*List, error)
	ListByUser(ctx context.Context, userID string, p Page) (Paginated[List], error)
	AddItem(ctx context.Context, listUUID, itemUUID string) error
	RemoveItem(ctx context.Context, listUUID, itemUUID string) error
}
