// Package users implements the user account domain: the stored credential
// record, its repository, and the signup/login service.
package users

import "go.mongodb.org/mongo-driver/v2/bson"

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

// User is a stored user record. Exactly one record exists per email; records
// are created on signup and never mutated or deleted.
//
// HashedPassword is never serialized into responses.
type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string        `bson:"email" json:"email"`
	HashedPassword string        `bson:"hashed_password" json:"-"`
}

// Token is the ephemeral result of a successful login. Nothing is persisted.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer is the only token type this service issues.
const TokenTypeBearer = "bearer"
