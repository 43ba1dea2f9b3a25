package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account that can own files and open sessions.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"` // stored lowercase, unique
	PasswordHash string             `bson:"password_hash" json:"-"` // bcrypt hash (never in JSON)
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}
