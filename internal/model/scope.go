package model

// Scope identifies the authenticated admin for a request.
type Scope struct {
	AdminID uint
	Email   string
}
