package admin

import "time"

// Admin is a dashboard account.
type Admin struct {
	ID           uint
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type CreateInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
