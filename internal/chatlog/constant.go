package chatlog

const (
	DefaultLimit = 20
	MaxLimit     = 100
)
