package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-sessions/internal/config"
	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/store"
	"github.com/MKhiriev/go-auth-sessions/internal/utils"
	"github.com/MKhiriev/go-auth-sessions/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the full JWT
// session lifecycle using a UserRepository for persistence, bcrypt for
// password hashing and HMAC-SHA256 for token signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users and to rotate the stored refresh token.
	userRepository store.UserRepository

	// accessTokenSignKey is the HMAC secret used to sign and verify access
	// tokens. Distinct from refreshTokenSignKey.
	accessTokenSignKey string

	// refreshTokenSignKey is the HMAC secret used to sign and verify
	// refresh tokens.
	refreshTokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenDuration controls how long a newly issued access token
	// remains valid.
	accessTokenDuration time.Duration

	// refreshTokenDuration controls how long a newly issued refresh token
	// remains valid.
	refreshTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		accessTokenSignKey:   cfg.AccessTokenSignKey,
		refreshTokenSignKey:  cfg.RefreshTokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// No token is issued on registration.
//
// Returns the public projection of the persisted user or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - A wrapped storage or hashing error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: digest,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user and opens a session.
//
// It looks up the account by email including the password digest, verifies
// the password with bcrypt, issues an access token (accessTokenDuration)
// and a refresh token (refreshTokenDuration) keyed on the email, and
// persists the refresh token against the user. The overwrite is the
// rotation mechanism: any previously stored refresh token becomes
// un-rotatable.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// the response carries no user-enumeration signal.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmailWithPassword(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.Session{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Email, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Email, a.refreshTokenDuration, a.refreshTokenSignKey)
	if err != nil {
		log.Err(err).Msg("refresh token creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.userRepository.UpdateRefreshToken(ctx, foundUser.UserID, refreshToken.SignedString); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("refresh token persistence failed")
		return models.Session{}, fmt.Errorf("refresh token persistence failed: %w", err)
	}

	return models.Session{
		User:         foundUser.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUserProfile returns the public projection of the user with the given id.
//
// Returns store.ErrNoUserWasFound (wrapped) if no such user exists. The
// projection excludes the password digest and the stored refresh token by
// construction.
func (a *authService) GetUserProfile(ctx context.Context, userID int64) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser.Public(), nil
}

// GetAllUsers returns the public projections of every stored user.
//
// The listing applies the same secretless projection as GetUserProfile.
func (a *authService) GetAllUsers(ctx context.Context) ([]models.PublicUser, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	return publicUsers, nil
}

// RefreshAccessToken exchanges a live refresh token for a fresh access token.
//
// A refresh token is accepted only if it is textually equal to the value
// currently stored against a user AND verifies cryptographically AND its
// email claim matches that user's email. The stored refresh token itself is
// not rotated on this path; it stays valid until its expiry or until the
// next login overwrites it.
//
// Returns:
//   - ErrNoRefreshTokenProvided if refreshToken is empty.
//   - ErrRefreshTokenNotRecognized for a stale/unknown token, a failed
//     signature or expiry check, or an email-claim mismatch.
func (a *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		log.Error().Msg("refresh called without a token")
		return models.Token{}, ErrNoRefreshTokenProvided
	}

	foundUser, err := a.userRepository.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Msg("refresh token matches no stored value")
			return models.Token{}, ErrRefreshTokenNotRecognized
		}

		log.Err(err).Msg("user search by refresh token failed")
		return models.Token{}, fmt.Errorf("user search by refresh token failed: %w", err)
	}

	parsed, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored refresh token failed verification")
		return models.Token{}, ErrRefreshTokenNotRecognized
	}

	if parsed.Email != foundUser.Email {
		log.Error().Int64("id", foundUser.UserID).Msg("refresh token email claim mismatch")
		return models.Token{}, ErrRefreshTokenNotRecognized
	}

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Email, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return accessToken, nil
}

// ParseAccessToken validates and parses a raw access-token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim against the access-token secret. Any validation
// failure (expired, wrong issuer, malformed, wrong key) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
