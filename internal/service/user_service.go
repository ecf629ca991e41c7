package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	errs "stonks/internal/errors"
	"stonks/internal/repository"
)

// UserService exposes domain operations over user records.
type UserService interface {
	ListUsers(ctx context.Context) ([]bson.D, error)
	GetUser(ctx context.Context, uid string) (bson.D, error)
	UserExists(ctx context.Context, uid string) (bool, error)
	CreateUser(ctx context.Context, doc bson.D) error
	DeleteUser(ctx context.Context, uid string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]bson.D, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, uid string) (bson.D, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *userService) UserExists(ctx context.Context, uid string) (bool, error) {
	_, err := s.repo.FindByUID(ctx, uid)
	if errors.Is(err, errs.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *userService) CreateUser(ctx context.Context, doc bson.D) error {
	return s.repo.Insert(ctx, doc)
}

// DeleteUser removes the record matching uid. A missing record is not an
// error; callers report success either way.
func (s *userService) DeleteUser(ctx context.Context, uid string) error {
	_, err := s.repo.DeleteByUID(ctx, uid)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil
	}
	return err
}
