package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
)

// ParseID converts a caller-supplied identifier into an ObjectID.
// Anything that is not exactly 24 hexadecimal characters fails with
// apperr.ErrInvalidID before any query is attempted.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, apperr.ErrInvalidID
	}
	return id, nil
}

// IsValidID reports whether s is a well-formed 24-hex ObjectID.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
