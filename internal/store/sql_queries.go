package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-sessions/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the secretless projection of the users table: the password
// digest is deliberately absent and must be requested explicitly via
// userColumnsWithPassword.
var userColumns = []string{
	"user_id",
	"email",
	"first_name",
	"last_name",
	"photo",
	"phone",
	"refresh_token",
	"created_at",
	"updated_at",
}

// userColumnsWithPassword extends the projection with the password digest
// for the login path.
var userColumnsWithPassword = append(
	append([]string{}, userColumns...),
	"password_hash",
)

// buildCreateUserQuery builds the INSERT for a new user row. The RETURNING
// clause yields the canonical database representation of the created
// account (without the password digest).
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("email", "password_hash", "first_name", "last_name", "photo", "phone").
		Values(user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Photo, user.Phone).
		Suffix("RETURNING user_id, email, first_name, last_name, photo, phone, refresh_token, created_at, updated_at").
		ToSql()
}

// buildFindUserQuery builds a single-row SELECT filtered by the given
// squirrel predicate (e.g. sq.Eq{"email": email}).
func buildFindUserQuery(where any, withPassword bool) (string, []any, error) {
	columns := userColumns
	if withPassword {
		columns = userColumnsWithPassword
	}

	return psql.Select(columns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

// buildGetAllUsersQuery builds the SELECT over every user row, ordered by id
// for deterministic listings.
func buildGetAllUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("user_id").
		ToSql()
}

// buildUpdateRefreshTokenQuery builds the UPDATE that rotates the stored
// refresh token and bumps updated_at.
func buildUpdateRefreshTokenQuery(userID int64, refreshToken string) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("refresh_token", refreshToken).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
