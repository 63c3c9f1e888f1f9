package usecase

import (
	"context"

	"listkeeper/internal/apperr"
	"listkeeper/internal/domain"
	"listkeeper/pkg/utils"
)

type ListService struct {
	lists domain.ListRepository
}

func NewListService(lists domain.ListRepository) *ListService {
	return &ListService{lists: lists}
}

type CreateListInput struct {
	Name        string
	Description string
	UserID      string
}

func (s *ListService) Create(ctx context.Context, in CreateListInput) error {
	if in.Name == "" {
		return apperr.BadRequest("list name cannot be empty")
	}
	if in.UserID == "" {
		return apperr.BadRequest("user id cannot be empty")
	}

	l := &domain.List{
		UUID:        utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		UserID:      in.UserID,
		Items:       []domain.Item{},
	}
	if err := s.lists.Create(ctx, l); err != nil {
		return apperr.Internal("create list failed", err)
	}
	return nil
}

func (s *ListService) ownedList(ctx context.Context, uuid, callerID string) (*domain.List, error) {
	l, err := s.lists.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, apperr.Internal("find list failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound("list not found")
	}
	if l.UserID != callerID {
		return nil, apperr.Forbidden("you do not have permission to access this list")
	}
	return l, nil
}

func (s *ListService) Get(ctx context.Context, uuid, callerID string) (*domain.List, error) {
	if uuid == "" {
		return nil, apperr.BadRequest("list uuid cannot be empty")
	}
	return s.ownedList(ctx, uuid, callerID)
}

type UpdateListInput struct {
	UUID        string
	Name        *string
	Description *string
	UserID      string
}

func (s *ListService) Update(ctx context.Context, in UpdateListInput) error {
	if in.Name == nil && in.Description == nil {
		return apperr.BadRequest("no fields to update")
	}

	l, err := s.ownedList(ctx, in.UUID, in.UserID)
	if err != nil {
		return err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return apperr.BadRequest("list name cannot be empty")
		}
		l.Name = *in.Name
	}
	if in.Description != nil {
		l.Description = *in.Description
	}

	if err := s.lists.Update(ctx, l); err != nil {
		return apperr.Internal("update list failed", err)
	}
	return nil
}

func (s *ListService) Delete(ctx context.Context, uuid, callerID string) error {
	if _, err := s.ownedList(ctx, uuid, callerID); err != nil {
		return err
	}
	if err := s.lists.SoftDelete(ctx, uuid); err != nil {
		return apperr.Internal("delete list failed", err)
	}
	return nil
}

func (s *ListService) ListByUser(ctx context.Context, userID string, p domain.Page) (domain.Paginated[domain.List], error) {
	res, err := s.lists.ListByUser(ctx, userID, p)
	if err != nil {
		return res, apperr.Internal("list lists failed", err)
	}
	return res, nil
}

func (s *ListService) AddItem(ctx context.Context, listUUID, itemUUID, callerID string) error {
	if itemUUID == "" {
		return apperr.BadRequest("item uuid cannot be empty")
	}
	l, err := s.ownedList(ctx, listUUID, callerID)
	if err != nil {
		return err
	}
	if l.Contains(itemUUID) {
		return apperr.BadRequest("item already in list")
	}
	if err := s.lists.AddItem(ctx, listUUID, itemUUID); err != nil {
		return apperr.Internal("add item to list failed", err)
	}
	return nil
}

func (s *ListService) RemoveItem(ctx context.Context, listUUID, itemUUID, callerID string) error {
	if itemUUID == "" {
		return apperr.BadRequest("item uuid cannot be empty")
	}
	l, err := s.ownedList(ctx, listUUID, callerID)
	if err != nil {
		return err
	}
	if !l.Contains(itemUUID) {
		return apperr.BadRequest("item not in list")
	}
	if err := s.lists.RemoveItem(ctx, listUUID, itemUUID); err != nil {
		return apperr.Internal("remove item from list failed", err)
	}
	return nil
}
