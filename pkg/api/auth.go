package api

// RegisterRequest is the body of POST /api/users/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=4,max=50"`
	Email    string `json:"email" validate:"required,min=8,max=50"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

// LoginRequest is the body of POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,min=8,max=50"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

// TokenResponse is the body returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken" validate:"required"` // bearer token, opaque to the client
}

// ErrorResponse is the error body the server may return on non-2xx statuses
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // short error description
	Message string `json:"message,omitempty"` // human readable message
}

// Text returns the most specific message carried by the response
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
