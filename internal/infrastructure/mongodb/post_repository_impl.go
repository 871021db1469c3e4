package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	var p entity.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetFeedPost fetches a single post through the same author-join pipeline
// used for listings, so both read paths project identical records.
func (r *PostRepository) GetFeedPost(ctx context.Context, id primitive.ObjectID) (*entity.FeedPost, error) {
	match := bson.D{{Key: "_id", Value: id}}
	posts, err := r.aggregateFeed(ctx, feedPipeline(match, false))
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperr.ErrNotFound
	}
	return &posts[0], nil
}

func (r *PostRepository) ListFeed(ctx context.Context, filter entity.FeedFilter) ([]entity.FeedPost, error) {
	var match bson.D
	switch {
	case filter.AutorID != nil:
		match = bson.D{{Key: "autorId", Value: *filter.AutorID}}
	case filter.Hashtag != "":
		match = bson.D{{Key: "hashtags", Value: filter.Hashtag}}
	}
	return r.aggregateFeed(ctx, feedPipeline(match, true))
}

func (r *PostRepository) aggregateFeed(ctx context.Context, pipeline mongo.Pipeline) ([]entity.FeedPost, error) {
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	posts := make([]entity.FeedPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies a partial merge. When Conteudo changes the caller passes
// the hashtags re-derived from the new content, keeping the stored tag set
// consistent with what readers will see.
func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, patch entity.PostPatch, hashtags []string) (*entity.Post, error) {
	set := bson.M{}
	if patch.Conteudo != nil {
		set["conteudo"] = *patch.Conteudo
		set["hashtags"] = hashtags
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var p entity.Post
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// feedPipeline builds the post/author aggregation: optional match, newest-
// first sort for listings, $lookup into usuarios, $unwind preserving posts
// whose author is gone, and a projection that resolves the effective
// author name ($ifNull falls back from the stored snapshot to the joined
// author's current name).
func feedPipeline(match bson.D, sorted bool) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	if sorted {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "data", Value: -1}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "autorId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "autor"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$autor"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "conteudo", Value: 1},
			{Key: "data", Value: 1},
			{Key: "hashtags", Value: 1},
			{Key: "autorId", Value: 1},
			{Key: "autorNome", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$autorNome", "$autor.nome"}},
			}},
		}}},
	)
	return pipeline
}

var _ repository.PostRepository = (*PostRepository)(nil)
