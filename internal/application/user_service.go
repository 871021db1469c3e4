package application

import (
	"context"
	"time"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
	"github.com/guhz021/microblog-api/pkg/helpers"
	"github.com/guhz021/microblog-api/pkg/validation"
)

// UserService orchestrates user operations: presence validation,
// identifier coercion, senha hashing and creation/update timestamps.
type UserService struct {
	Repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Create(ctx context.Context, in entity.CreateUser) (*entity.User, error) {
	if missing := validation.Required(in); missing != nil {
		return nil, apperr.NewValidation(missing)
	}

	u := &entity.User{
		Nome:     in.Nome,
		Email:    in.Email,
		CriadoEm: time.Now().UTC(),
	}
	if in.Senha != "" {
		hash, err := helpers.HashPassword(in.Senha)
		if err != nil {
			return nil, err
		}
		u.Senha = hash
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, oid)
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	if patch.Senha != nil {
		hash, err := helpers.HashPassword(*patch.Senha)
		if err != nil {
			return nil, err
		}
		patch.Senha = &hash
	}
	return s.Repo.Update(ctx, oid, patch)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, err := entity.ParseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrNotFound
	}
	return nil
}
