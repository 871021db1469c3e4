package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/entity"
)

// CommentRepository defines storage operations over the "comentarios"
// collection.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error)
	List(ctx context.Context, filter entity.CommentFilter) ([]entity.Comment, error)
	Update(ctx context.Context, id primitive.ObjectID, patch entity.CommentPatch) (*entity.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
