package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and is excluded from every JSON
// serialization path, REST and MCP alike.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"`
	Name       string             `json:"name" bson:"name"`
	PictureURL string             `json:"pictureUrl,omitempty" bson:"picture_url,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

// UserPatch is a field-level partial update for a User document.
// Nil fields are left untouched by the store.
type UserPatch struct {
	Email      *string `bson:"email,omitempty"`
	Password   *string `bson:"password,omitempty"`
	Name       *string `bson:"name,omitempty"`
	PictureURL *string `bson:"picture_url,omitempty"`
}
