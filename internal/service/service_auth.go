package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for "iat" and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser hashes the password and creates the account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error, e.g. store.ErrUsernameAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrWrongPassword so the
// response does not reveal which usernames exist.
func (a *authService) Login(ctx context.Context, req models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Login").Str("username", req.Username).Msg("unknown username")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Info().Str("func", "*authService.Login").Int64("id", foundUser.ID).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "*authService.Login").Int64("id", foundUser.ID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user, valid from now for the
// configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns its claims.
//
// Failures are reported as ErrTokenIsExpired, ErrTokenInvalidSignature or
// ErrTokenMalformed; all of them match ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err == nil {
		return token, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenIsExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return models.Token{}, ErrTokenInvalidSignature
	default:
		return models.Token{}, ErrTokenMalformed
	}
}
