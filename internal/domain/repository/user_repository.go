package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/entity"
)

// UserRepository defines storage operations over the "usuarios" collection.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
