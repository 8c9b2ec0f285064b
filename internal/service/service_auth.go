package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification (including legacy plaintext
// tolerance), the persisted session singleton, and the JWT token lifecycle.
type authService struct {
	// accountRepository is the data-access layer used to create and look up
	// users.
	accountRepository store.AccountRepository

	// sessionRepository persists the singleton logged-in identity.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accounts store.AccountRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accounts,
		sessionRepository: sessions,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// The username is trimmed of surrounding whitespace before validation; an
// empty trimmed username, an empty password, or an unknown role all fail
// with ErrInvalidDataProvided. The password is stored as its SHA-256 hex
// digest — never plaintext. No password strength rule is enforced, matching
// the data this store has to stay compatible with.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided on validation failure.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) Register(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" || !role.Valid() {
		log.Error().Str("username", username).Str("role", string(role)).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user := models.User{
		Username: username,
		Password: utils.HashPassword(password),
		Role:     role,
	}

	registeredUser, err := a.accountRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The supplied password matches when its SHA-256 digest equals the stored
// value OR when the stored value equals the raw password itself. The second
// arm tolerates legacy records the one-time migration has not rewritten yet;
// it costs nothing once migration has run because stored digests never equal
// typical passwords.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username (trimmed) or password is empty.
//   - A wrapped storage error if the lookup fails (see store.ErrUserNotFound).
//   - ErrWrongPassword if neither comparison matches.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.accountRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	hashed := utils.HashPassword(password)
	if foundUser.Password != hashed && foundUser.Password != password {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the username as "sub", the role
// as a custom claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// StartSession persists user as the singleton logged-in identity,
// overwriting any previous session.
func (a *authService) StartSession(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	session := models.Session{Username: user.Username, Role: user.Role}
	if err := a.sessionRepository.Save(ctx, session); err != nil {
		log.Err(err).Str("username", user.Username).Msg("session persist failed")
		return fmt.Errorf("session persist failed: %w", err)
	}

	return nil
}

// RestoreSession loads the persisted logged-in identity, if any. The stored
// username is checked against the account store on a best-effort basis: a
// dangling session (user document rewritten by hand) reads back as absent.
func (a *authService) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	log := logger.FromContext(ctx)

	session, found, err := a.sessionRepository.Load(ctx)
	if err != nil || !found {
		return models.Session{}, false, err
	}

	if _, err := a.accountRepository.FindUserByUsername(ctx, session.Username); err != nil {
		log.Warn().Str("username", session.Username).Msg("persisted session references unknown user")
		return models.Session{}, false, nil
	}

	return session, true, nil
}

// EndSession deletes the persisted session document and is a no-op when no
// session exists.
func (a *authService) EndSession(ctx context.Context) error {
	return a.sessionRepository.Clear(ctx)
}
