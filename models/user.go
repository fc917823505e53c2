package models

import "time"

// User represents an account entity used for authentication and session
// management. It contains identity attributes, opaque profile data and
// credential-related secrets.
// Sensitive fields must never be exposed outside trusted boundaries;
// responses are built from [PublicUser] instead.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at creation time.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never serialized and never leaves the service layer.
	PasswordHash string `json:"-"`

	// FirstName and LastName are display attributes.
	// The service does not validate them.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Photo is an opaque profile attribute (URL or data URI).
	Photo string `json:"photo"`

	// Phone is an opaque profile attribute.
	Phone string `json:"phone"`

	// RefreshToken is the most recently issued refresh token for this user,
	// or an empty string if none is active. At most one live refresh token
	// exists per user: a new login overwrites the previous value.
	// Never serialized.
	RefreshToken string `json:"-"`

	// CreatedAt and UpdatedAt are set by the database.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the client-facing projection of [User].
// It excludes secret fields by construction: there is no field to leak,
// so no post-hoc redaction is needed before serialization.
type PublicUser struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Photo     string    `json:"photo"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public builds the client-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Photo:     u.Photo,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
