package models

// Identity describes the authenticated user as derived from the bearer
// token payload. It is recomputed from the token on every credential
// change and is never mutated independently.
type Identity struct {
	ID    string
	Email string
	Name  string
}
