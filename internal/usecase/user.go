package usecase

import (
	"context"

	"listkeeper/internal/apperr"
	"listkeeper/internal/domain"
	"listkeeper/pkg/utils"
)

// UserService covers the authenticated user's own profile.
type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.FindByUUID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

type UpdateMeInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (s *UserService) UpdateMe(ctx context.Context, userID string, in UpdateMeInput) error {
	u, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return apperr.BadRequest("name cannot be empty")
		}
		u.Name = *in.Name
	}
	if in.Email != nil && *in.Email != u.Email {
		if *in.Email == "" {
			return apperr.BadRequest("email cannot be empty")
		}
		taken, err := s.users.FindByEmail(ctx, *in.Email)
		if err != nil {
			return apperr.Internal("find user failed", err)
		}
		if taken != nil {
			return apperr.BadRequest("email already in use")
		}
		u.Email = *in.Email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return apperr.BadRequest("password cannot be empty")
		}
		u.Password = utils.HashPassword(*in.Password)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return apperr.Internal("update user failed", err)
	}
	return nil
}

func (s *UserService) DeleteMe(ctx context.Context, userID string) error {
	if _, err := s.Me(ctx, userID); err != nil {
		return err
	}
	if err := s.users.SoftDelete(ctx, userID); err != nil {
		return apperr.Internal("delete user failed", err)
	}
	return nil
}
