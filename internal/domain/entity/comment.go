package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a document in the "comentarios" collection. Unlike posts,
// creation does not verify that PostagemID or UsuarioID exist.
type Comment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostagemID   primitive.ObjectID `bson:"postagemId" json:"postagemId"`
	UsuarioID    primitive.ObjectID `bson:"usuarioId" json:"usuarioId"`
	Texto        string             `bson:"texto" json:"texto"`
	CriadoEm     time.Time          `bson:"criadoEm" json:"criadoEm"`
	AtualizadoEm *time.Time         `bson:"atualizadoEm,omitempty" json:"atualizadoEm,omitempty"`
}

// CreateComment is the input for creating a comment.
type CreateComment struct {
	PostagemID string `json:"postagemId" validate:"notblank"`
	UsuarioID  string `json:"usuarioId" validate:"notblank"`
	Texto      string `json:"texto" validate:"notblank"`
}

// CommentPatch is a partial update; reference fields are re-coerced from
// string identifiers when present.
type CommentPatch struct {
	PostagemID *string `json:"postagemId"`
	UsuarioID  *string `json:"usuarioId"`
	Texto      *string `json:"texto"`
}

// CommentFilter narrows comment listings. Identifier fields are string
// form and coerced before querying; empty fields are ignored.
type CommentFilter struct {
	PostagemID string
	UsuarioID  string
}
