package usecase

import (
	"context"

	"listkeeper/internal/apperr"
	"listkeeper/internal/domain"
	"listkeeper/pkg/utils"
)

type ItemService struct {
	items domain.ItemRepository
}

func NewItemService(items domain.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

type CreateItemInput struct {
	Name        string
	Description string
	Value       float64
	ListUUID    string // optional: attach to this list at creation
	UserID      string
}

func (s *ItemService) Create(ctx context.Context, in CreateItemInput) error {
	if in.Name == "" {
		return apperr.BadRequest("item name cannot be empty")
	}
	if in.Description == "" {
		return apperr.BadRequest("item description cannot be empty")
	}
	if in.Value <= 0 {
		return apperr.BadRequest("item value must be greater than zero")
	}
	if in.UserID == "" {
		return apperr.BadRequest("user id cannot be empty")
	}

	it := &domain.Item{
		UUID:        utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Value:       in.Value,
		UserID:      in.UserID,
	}
	if err := s.items.Create(ctx, it, in.ListUUID); err != nil {
		return apperr.Internal("create item failed", err)
	}
	return nil
}

// ownedItem loads the item and enforces the ownership invariant shared by
// every read-by-id and mutation.
func (s *ItemService) ownedItem(ctx context.Context, uuid, callerID string) (*domain.Item, error) {
	it, err := s.items.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, apperr.Internal("find item failed", err)
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}
	if it.UserID != callerID {
		return nil, apperr.Forbidden("you do not have permission to access this item")
	}
	return it, nil
}

func (s *ItemService) Get(ctx context.Context, uuid, callerID string) (*domain.Item, error) {
	if uuid == "" {
		return nil, apperr.BadRequest("item uuid cannot be empty")
	}
	return s.ownedItem(ctx, uuid, callerID)
}

type UpdateItemInput struct {
	UUID        string
	Name        *string
	Description *string
	Value       *float64
	UserID      string
}

func (s *ItemService) Update(ctx context.Context, in UpdateItemInput) error {
	if in.Name == nil && in.Description == nil && in.Value == nil {
		return apperr.BadRequest("no fields to update")
	}

	it, err := s.ownedItem(ctx, in.UUID, in.UserID)
	if err != nil {
		return err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return apperr.BadRequest("item name cannot be empty")
		}
		it.Name = *in.Name
	}
	if in.Description != nil {
		if *in.Description == "" {
			return apperr.BadRequest("item description cannot be empty")
		}
		it.Description = *in.Description
	}
	if in.Value != nil {
		if *in.Value <= 0 {
			return apperr.BadRequest("item value must be greater than zero")
		}
		it.Value = *in.Value
	}

	if err := s.items.Update(ctx, it); err != nil {
		return apperr.Internal("update item failed", err)
	}
	return nil
}

func (s *ItemService) Delete(ctx context.Context, uuid, callerID string) error {
	if _, err := s.ownedItem(ctx, uuid, callerID); err != nil {
		return err
	}
	if err := s.items.SoftDelete(ctx, uuid); err != nil {
		return apperr.Internal("delete item failed", err)
	}
	return nil
}

func (s *ItemService) ByList(ctx context.Context, listUUID, callerID string) ([]domain.Item, error) {
	if listUUID == "" {
		return nil, apperr.BadRequest("list uuid cannot be empty")
	}
	items, err := s.items.FindByList(ctx, listUUID, callerID)
	if err != nil {
		return nil, apperr.Internal("find items failed", err)
	}
	return items, nil
}

func (s *ItemService) List(ctx context.Context, userID string, p domain.Page) (domain.Paginated[domain.Item], error) {
	res, err := s.items.ListByUser(ctx, userID, p)
	if err != nil {
		return res, apperr.Internal("list items failed", err)
	}
	return res, nil
}

func (s *ItemService) Search(ctx context.Context, userID, term string, p domain.Page) (domain.Paginated[domain.Item], error) {
	if term == "" {
		return domain.Paginated[domain.Item]{}, apperr.BadRequest("search term cannot be empty")
	}
	res, err := s.items.Search(ctx, userID, term, p)
	if err != nil {
		return res, apperr.Internal("search items failed", err)
	}
	return res, nil
}
