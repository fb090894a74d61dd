package api

// LoginRequest represents an authentication request
type LoginRequest struct {
	Email    string `json:"email"`    // account email
	Password string `json:"password"` // account password
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	Token string `json:"token"` // JWT bearer token
}

// SignupRequest represents a registration request
type SignupRequest struct {
	Name     string `json:"name"`     // display name
	Email    string `json:"email"`    // account email
	Password string `json:"password"` // account password
}

// MessageResponse represents a plain acknowledgement from the server
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error body from the server
type ErrorResponse struct {
	Message string `json:"message,omitempty"` // human readable message
	Error   string `json:"error,omitempty"`   // alternative field some endpoints use
}
