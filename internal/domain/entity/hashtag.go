package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hashtag is a document in the "hashtags" registry. Existence is binary;
// Nome is unique and the only payload.
type Hashtag struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nome string             `bson:"nome" json:"nome"`
}
