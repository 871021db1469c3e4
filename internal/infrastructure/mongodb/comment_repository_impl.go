package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
	"github.com/guhz021/microblog-api/internal/domain/repository"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(commentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error) {
	var c entity.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List coerces the string reference fields in the filter to ObjectIDs
// before querying; a malformed identifier fails fast without a store call.
func (r *CommentRepository) List(ctx context.Context, filter entity.CommentFilter) ([]entity.Comment, error) {
	query := bson.M{}
	if filter.PostagemID != "" {
		id, err := entity.ParseID(filter.PostagemID)
		if err != nil {
			return nil, err
		}
		query["postagemId"] = id
	}
	if filter.UsuarioID != "" {
		id, err := entity.ParseID(filter.UsuarioID)
		if err != nil {
			return nil, err
		}
		query["usuarioId"] = id
	}

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	comments := make([]entity.Comment, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id primitive.ObjectID, patch entity.CommentPatch) (*entity.Comment, error) {
	set := bson.M{"atualizadoEm": time.Now().UTC()}
	if patch.PostagemID != nil {
		pid, err := entity.ParseID(*patch.PostagemID)
		if err != nil {
			return nil, err
		}
		set["postagemId"] = pid
	}
	if patch.UsuarioID != nil {
		uid, err := entity.ParseID(*patch.UsuarioID)
		if err != nil {
			return nil, err
		}
		set["usuarioId"] = uid
	}
	if patch.Texto != nil {
		set["texto"] = *patch.Texto
	}

	var c entity.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
