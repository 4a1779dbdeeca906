package accountsdk

import "time"

// RegisterRequest is the body of POST /api/auth/register. Role is accepted
// for compatibility with older clients and ignored by the server.
type RegisterRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"secret1"`
	Role     string `json:"role,omitempty" example:"user"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"secret1"`
}

// TokenResponse carries the signed session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is returned by operations that only confirm success.
type MessageResponse struct {
	Message string `json:"message" example:"Country added to favorites"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// User is the public view of an account. The password hash is never part of
// it.
type User struct {
	ID        string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Name      string    `json:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	Role      string    `json:"role" example:"user"`
	Favorites []string  `json:"favorites"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse is returned by GET /api/auth/user.
type UserResponse struct {
	User User `json:"user"`
}

// UpdateUserRequest is the body of PUT /api/auth/update/user. Empty fields
// are left unchanged.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty" example:"Ada King"`
	Email    string `json:"email,omitempty" example:"ada.king@example.com"`
	Password string `json:"password,omitempty" example:"n3w-secret"`
}

// UpdateUserResponse is returned by PUT /api/auth/update/user.
type UpdateUserResponse struct {
	Message string `json:"message" example:"User updated successfully"`
	User    User   `json:"user"`
}

// FavoriteRequest names a country by its opaque code.
type FavoriteRequest struct {
	CountryID string `json:"countryId" example:"AUS"`
}

// FavoritesResponse lists the caller's favorites in insertion order.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status" example:"ok"`
	Uptime  string            `json:"uptime" example:"1h2m3s"`
	Version string            `json:"version" example:"0.1.0"`
	Checks  map[string]string `json:"checks,omitempty"`
}
