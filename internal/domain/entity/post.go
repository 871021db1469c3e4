package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a document in the "posts" collection. AutorNome is a snapshot of
// the author's name taken at creation time; Hashtags is derived from
// Conteudo when the post is written, never recomputed on read.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Conteudo  string             `bson:"conteudo" json:"conteudo"`
	AutorID   primitive.ObjectID `bson:"autorId" json:"autorId"`
	AutorNome string             `bson:"autorNome,omitempty" json:"autorNome,omitempty"`
	Data      time.Time          `bson:"data" json:"data"`
	Hashtags  []string           `bson:"hashtags" json:"hashtags"`
}

// CreatePost is the input for creating a post. AutorID must reference an
// existing user.
type CreatePost struct {
	Conteudo string `json:"conteudo" validate:"notblank"`
	AutorID  string `json:"autorId" validate:"notblank"`
}

// PostPatch is a partial update. Changing Conteudo re-derives Hashtags.
type PostPatch struct {
	Conteudo *string `json:"conteudo"`
}

// FeedFilter narrows the post feed to one author or one hashtag.
// The zero value matches every post.
type FeedFilter struct {
	AutorID *primitive.ObjectID
	Hashtag string
}

// FeedPost is the read-side projection of a post joined with its author.
// AutorNome resolves to the stored snapshot, falling back to the author's
// current name, and is nil when both are gone.
type FeedPost struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Conteudo  string             `bson:"conteudo" json:"conteudo"`
	Data      time.Time          `bson:"data" json:"data"`
	Hashtags  []string           `bson:"hashtags" json:"hashtags"`
	AutorID   primitive.ObjectID `bson:"autorId" json:"autorId"`
	AutorNome *string            `bson:"autorNome" json:"autorNome"`
}
