// Package models defines the client-side data models exchanged with the
// store API and held by the session and list services.
package models

// User is a directory entry as returned by GET /users.
type User struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty"`
}

// NewUser is the body of POST /users. Name, Email and Password are required.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// Product is a catalog entry as returned by GET /products.
type Product struct {
	ID          int      `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price,omitempty"`
	Images      []string `json:"images"`
}

// Credentials are held only for the duration of a login call.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body of a successful POST /auth/login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
