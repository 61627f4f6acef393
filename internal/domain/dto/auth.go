// Package dto defines Data Transfer Objects for authentication.
package dto

// LoginRequest is the JSON request body for the admin login endpoint.
//
// @Description Request to authenticate the admin principal
// @Example {"username": "admin", "password": "password123"}
type LoginRequest struct {
	// Username is the admin username configured on the service.
	Username string `json:"username" binding:"required" example:"admin"`
	// Password is the admin password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse is the JSON response body for a successful login.
//
// @Description Successful authentication response with a JWT access token
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name LoginResponse

// Claims represents validated JWT claims for an authenticated request.
type Claims struct {
	// Subject is the authenticated principal, the configured admin username.
	Subject string `json:"sub"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
