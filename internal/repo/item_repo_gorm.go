package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"listkeeper/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

var _ domain.ItemRepository = (*ItemRepo)(nil)

// Create inserts the item and, when a list uuid is supplied, the join row in
// the same transaction. Items can thus be created already attached to a list.
func (r *ItemRepo) Create(ctx context.Context, it *domain.Item, listUUID string) error {
	if listUUID == "" {
		return r.db.WithContext(ctx).Create(it).Error
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(it).Error; err != nil {
			return err
		}
		return tx.Create(&domain.ListItem{ListID: listUUID, ItemID: it.UUID}).Error
	})
}

func (r *ItemRepo) Update(ctx context.Context, it *domain.Item) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("uuid = ?", it.UUID).
		Updates(map[string]any{
			"name":        it.Name,
			"description": it.Description,
			"value":       it.Value,
		}).Error
}

func (r *ItemRepo) SoftDelete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&domain.Item{}).Error
}

func (r *ItemRepo) FindByUUID(ctx context.Context, uuid string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.WithContext(ctx).First(&it, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) FindByList(ctx context.Context, listUUID, userID string) ([]domain.Item, error) {
	items := []domain.Item{}
	err := r.db.WithContext(ctx).Model(&domain.Item{}).
		Joins("JOIN list_items ON list_items.item_id = items.uuid").
		Where("list_items.list_id = ?", listUUID).
		Where("items.user_id = ?", userID).
		Find(&items).Error
	return items, err
}

func (r *ItemRepo) ListByUser(ctx context.Context, userID string, p domain.Page) (domain.Paginated[domain.Item], error) {
	q := r.db.WithContext(ctx).Model(&domain.Item{}).Where("user_id = ?", userID)
	return r.paginate(q, p)
}

func (r *ItemRepo) Search(ctx context.Context, userID, term string, p domain.Page) (domain.Paginated[domain.Item], error) {
	like := "%" + strings.ToLower(term) + "%"
	q := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	return r.paginate(q, p)
}

func (r *ItemRepo) paginate(q *gorm.DB, p domain.Page) (domain.Paginated[domain.Item], error) {
	p = p.Normalize()
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Paginated[domain.Item]{}, err
	}
	var items []domain.Item
	if err := q.Order("created_at desc").Offset(p.Offset()).Limit(p.Limit).Find(&items).Error; err != nil {
		return domain.Paginated[domain.Item]{}, err
	}
	return domain.NewPaginated(items, total, p), nil
}
