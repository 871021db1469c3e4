package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the "usuarios" collection.
// Email uniqueness is enforced by a unique index created at startup;
// Senha holds a bcrypt hash and never leaves the API.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nome         string             `bson:"nome" json:"nome"`
	Email        string             `bson:"email" json:"email"`
	Senha        string             `bson:"senha,omitempty" json:"-"`
	CriadoEm     time.Time          `bson:"criadoEm" json:"criadoEm"`
	AtualizadoEm *time.Time         `bson:"atualizadoEm,omitempty" json:"atualizadoEm,omitempty"`
}

// CreateUser is the input for creating a user. Senha is optional on the
// HTTP surface; when present it is stored hashed.
type CreateUser struct {
	Nome  string `json:"nome" validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
	Senha string `json:"senha"`
}

// UserPatch is a partial update; only non-nil fields are applied.
type UserPatch struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
}
