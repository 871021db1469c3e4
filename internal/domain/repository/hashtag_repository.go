package repository

import (
	"context"

	"github.com/guhz021/microblog-api/internal/domain/entity"
)

// HashtagRepository records hashtags seen in post content. Upsert is
// idempotent: inserting an already-registered name is a no-op.
type HashtagRepository interface {
	Upsert(ctx context.Context, nome string) error
	List(ctx context.Context) ([]entity.Hashtag, error)
}
