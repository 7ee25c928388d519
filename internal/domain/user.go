package domain

import "time"

// User represents a registered account. The refresh token hash backs the
// rotation flow: it holds a bcrypt hash of the latest issued refresh token,
// or nil after logout.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Phone            string    `json:"phone"`
	Permission       bool      `json:"permission"`
	RefreshTokenHash *string   `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
