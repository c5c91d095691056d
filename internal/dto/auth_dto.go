package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserSummary is the public slice of a user returned after login.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResponse carries the client-side redirect hint; no token or session
// identifier is issued.
type LoginResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect"`
	User     UserSummary `json:"user"`
}
