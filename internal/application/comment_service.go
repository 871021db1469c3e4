package application

import (
	"context"
	"time"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
	"github.com/guhz021/microblog-api/pkg/validation"
)

// CommentService orchestrates comment CRUD. Creation coerces the post and
// user references but does not verify they exist; the referenced post or
// user may have been deleted, and readers must tolerate that.
type CommentService struct {
	Repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) *CommentService {
	return &CommentService{Repo: repo}
}

func (s *CommentService) Create(ctx context.Context, in entity.CreateComment) (*entity.Comment, error) {
	if missing := validation.Required(in); missing != nil {
		return nil, apperr.NewValidation(missing)
	}
	postagemID, err := entity.ParseID(in.PostagemID)
	if err != nil {
		return nil, err
	}
	usuarioID, err := entity.ParseID(in.UsuarioID)
	if err != nil {
		return nil, err
	}

	c := &entity.Comment{
		PostagemID: postagemID,
		UsuarioID:  usuarioID,
		Texto:      in.Texto,
		CriadoEm:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*entity.Comment, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, oid)
}

func (s *CommentService) List(ctx context.Context, filter entity.CommentFilter) ([]entity.Comment, error) {
	return s.Repo.List(ctx, filter)
}

func (s *CommentService) Update(ctx context.Context, id string, patch entity.CommentPatch) (*entity.Comment, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, oid, patch)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
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
