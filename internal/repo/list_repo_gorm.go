package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"listkeeper/internal/domain"
)

type ListRepo struct{ db *gorm.DB }

func NewListRepo(db *gorm.DB) *ListRepo { return &ListRepo{db: db} }

var _ domain.ListRepository = (*ListRepo)(nil)

// Create writes the list row and any pre-attached join rows in one
// transaction; a failure on the join insert rolls back the list row.
func (r *ListRepo) Create(ctx context.Context, l *domain.List) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		if len(l.Items) == 0 {
			return nil
		}
		joins := make([]domain.ListItem, 0, len(l.Items))
		for _, it := range l.Items {
			joins = append(joins, domain.ListItem{ListID: l.UUID, ItemID: it.UUID})
		}
		return tx.Create(&joins).Error
	})
}

func (r *ListRepo) Update(ctx context.Context, l *domain.List) error {
	return r.db.WithContext(ctx).Model(&domain.List{}).
		Where("uuid = ?", l.UUID).
		Updates(map[string]any{
			"name":        l.Name,
			"description": l.Description,
		}).Error
}

// SoftDelete marks the list deleted; join rows stay in place so the list
// would come back intact if ever restored.
func (r *ListRepo) SoftDelete(ctx context.Context, uuid string) error {
	return r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&domain.List{}).Error
}

func (r *ListRepo) FindByUUID(ctx context.Context, uuid string) (*domain.List, error) {
	var l domain.List
	err := r.db.WithContext(ctx).First(&l, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lists := []domain.List{l}
	if err := r.hydrateItems(ctx, lists); err != nil {
		return nil, err
	}
	return &lists[0], nil
}

func (r *ListRepo) ListByUser(ctx context.Context, userID string, p domain.Page) (domain.Paginated[domain.List], error) {
	p = p.Normalize()
	q := r.db.WithContext(ctx).Model(&domain.List{}).Where("user_id = ?", userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Paginated[domain.List]{}, err
	}
	var lists []domain.List
	if err := q.Order("created_at desc").Offset(p.Offset()).Limit(p.Limit).Find(&lists).Error; err != nil {
		return domain.Paginated[domain.List]{}, err
	}
	if err := r.hydrateItems(ctx, lists); err != nil {
		return domain.Paginated[domain.List]{}, err
	}
	return domain.NewPaginated(lists, total, p), nil
}

func (r *ListRepo) AddItem(ctx context.Context, listUUID, itemUUID string) error {
	return r.db.WithContext(ctx).Create(&domain.ListItem{ListID: listUUID, ItemID: itemUUID}).Error
}

func (r *ListRepo) RemoveItem(ctx context.Context, listUUID, itemUUID string) error {
	return r.db.WithContext(ctx).
		Where("list_id = ? AND item_id = ?", listUUID, itemUUID).
		Delete(&domain.ListItem{}).Error
}

// hydrateItems loads the items of every list in one batched join query keyed
// by the list-uuid set, then collates them in memory.
func (r *ListRepo) hydrateItems(ctx context.Context, lists []domain.List) error {
	for i := range lists {
		lists[i].Items = []domain.Item{}
	}
	if len(lists) == 0 {
		return nil
	}
	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.UUID)
	}

	type joinRow struct {
		ListID      string `gorm:"column:list_id"`
		domain.Item `gorm:"embedded"`
	}
	var rows []joinRow
	err := r.db.WithContext(ctx).Table("list_items").
		Select("list_items.list_id, items.*").
		Joins("JOIN items ON items.uuid = list_items.item_id AND items.deleted_at IS NULL").
		Where("list_items.list_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return err
	}

	byList := make(map[string][]domain.Item, len(lists))
	for _, row := range rows {
		byList[row.ListID] = append(byList[row.ListID], row.Item)
	}
	for i := range lists {
		if items, ok := byList[lists[i].UUID]; ok {
			lists[i].Items = items
		}
	}
	return nil
}
