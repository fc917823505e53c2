package models

// RegisterRequest carries the credentials and profile attributes of a new
// account. The plaintext password only ever lives in this request and is
// hashed before anything is persisted.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session bundles the artifacts of a successful login: the public user
// projection plus the freshly issued access and refresh tokens. The
// transport layer decides how they travel (cookies and/or JSON body).
type Session struct {
	User         PublicUser
	AccessToken  Token
	RefreshToken Token
}
