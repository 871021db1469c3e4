package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/entity"
)

// PostRepository defines storage operations over the "posts" collection.
// Feed reads run the author-join aggregation and return the projected
// FeedPost shape; ListFeed orders by data descending.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	GetFeedPost(ctx context.Context, id primitive.ObjectID) (*entity.FeedPost, error)
	ListFeed(ctx context.Context, filter entity.FeedFilter) ([]entity.FeedPost, error)
	Update(ctx context.Context, id primitive.ObjectID, patch entity.PostPatch, hashtags []string) (*entity.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
