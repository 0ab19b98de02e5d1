package repository

type CreateAdminOptions struct {
	Email        string
	PasswordHash string
}

// GetOneAdminOptions filters are ANDed; zero values are ignored. At least
// one filter must be set.
type GetOneAdminOptions struct {
	ID    uint
	Email string
}
