package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
)

type HashtagRepository struct {
	col *mongo.Collection
}

func NewHashtagRepository(db *mongo.Database) *HashtagRepository {
	return &HashtagRepository{col: db.Collection(hashtagsCollection)}
}

// Upsert registers a hashtag name, inserting only when absent. A
// duplicate-key error means a concurrent upsert won the race on the
// unique nome index, so the tag exists and the call succeeded.
func (r *HashtagRepository) Upsert(ctx context.Context, nome string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"nome": nome},
		bson.M{"$setOnInsert": bson.M{"nome": nome}},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

func (r *HashtagRepository) List(ctx context.Context) ([]entity.Hashtag, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
	if err != nil {
		return nil, err
	}
	tags := make([]entity.Hashtag, 0)
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

var _ repository.HashtagRepository = (*HashtagRepository)(nil)
