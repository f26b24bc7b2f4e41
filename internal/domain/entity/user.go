package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal identity referenced by carts, wishlists, orders and
// reviews. Credential handling lives outside this service; requests arrive
// with a bearer token already issued elsewhere.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
