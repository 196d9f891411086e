package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserProfile is the snapshot served by the user collaborator.
type UserProfile struct {
	ID           string   `json:"id"`
	Nickname     string   `json:"nickname"`
	AvatarURL    string   `json:"avatar_url"`
	JoinedGroups []string `json:"joined_groups"`
}

// UserSnapshot is the denormalized display row kept in the local users table.
type UserSnapshot struct {
	ID        string `db:"id" json:"id"`
	Nickname  string `db:"nickname" json:"nickname"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}

// OnlineUser is one entry of the connected-users listing. Ephemeral: it
// mirrors the presence registry, not the durable online/last-seen fields.
type OnlineUser struct {
	UserID    string    `json:"user_id"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatar_url"`
	LastSeen  time.Time `json:"last_seen"`
}

type AccessClaims struct {
	jwt.RegisteredClaims
}
