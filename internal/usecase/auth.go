// Package usecase holds the business operations: validation, ownership
// checks, and repository orchestration. Every failure is an apperr carrying
// the HTTP status it maps to.
package usecase

import (
	"context"

	"listkeeper/internal/apperr"
	"listkeeper/internal/core/auth"
	"listkeeper/internal/domain"
	"listkeeper/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwt *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return apperr.BadRequest("name, email and password are required")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return apperr.Internal("find user failed", err)
	}
	if existing != nil {
		return apperr.BadRequest("user already exists")
	}

	u := &domain.User{
		UUID:     utils.NewID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: utils.HashPassword(in.Password),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return apperr.Internal("create user failed", err)
	}
	return nil
}

type LoginOutput struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("find user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !utils.CheckPassword(password, u.Password) {
		return nil, apperr.Unauthorized("incorrect password")
	}

	token, err := s.jwt.Issue(u.UUID, u.Email)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &LoginOutput{User: u, Token: token}, nil
}
