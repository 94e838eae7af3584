package entity

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Password  string    `json:"-"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ModeratorRole string

const (
	// RoleAuditor may approve and reject diaries.
	RoleAuditor ModeratorRole = "auditor"
	// RoleAdmin may additionally delete diaries.
	RoleAdmin ModeratorRole = "admin"
)

type Moderator struct {
	ID        int64         `json:"id"`
	Username  string        `json:"username"`
	Password  string        `json:"-"`
	Role      ModeratorRole `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
