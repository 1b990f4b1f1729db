package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account.
// BSON field names match the legacy collection layout so existing
// documents keep working.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Nombre       string        `bson:"nombre" json:"nombre"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	CreatedAt    time.Time     `bson:"created_at,omitempty" json:"created_at,omitzero"`
	UpdatedAt    time.Time     `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}
