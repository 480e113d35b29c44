package dto

// MessageRes carries a short human-readable outcome.
type MessageRes struct {
	Message string `json:"message"`
}

// RegisteredUser is the public view of a freshly registered account.
type RegisteredUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterRes is returned with 201 from POST /auth/register.
type RegisterRes struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// LoggedInUser is the public view of an account after login.
type LoggedInUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginRes is returned with 200 from POST /auth/login.
// ExpiresIn is the token lifetime in seconds.
type LoginRes struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      LoggedInUser `json:"user"`
}

// MeRes echoes the caller's token claims.
type MeRes struct {
	UserID    uint   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expiresAt"`
}
