package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// GenerateJWTToken signs an HS256 token for subjectID.
//
// The token carries:
//   - Issuer    (iss): issuer
//   - Subject   (sub): subjectID in base 10
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Returns an error if issuer or signKey is empty or tokenDuration is not
// positive.
func GenerateJWTToken(issuer string, subjectID int64, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(subjectID, 10),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		SubjectID:        subjectID,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// The token must be HS256-signed with signKey, carry issuer as "iss", carry
// an "exp" later than now() and a numeric "sub". Returned errors wrap the
// golang-jwt sentinels (jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid,
// jwt.ErrTokenExpired, ...) so callers can tell them apart with errors.Is.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.Token{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subjectID, err := claims.GetSubjectID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", jwt.ErrTokenMalformed, err)
	}

	claims.Token = parsed
	claims.SignedString = tokenString
	claims.SubjectID = subjectID

	return *claims, nil
}

// ParseBearerToken extracts the credential from an Authorization header
// value. The literal, case-sensitive "Bearer " prefix is stripped when
// present; otherwise the whole value is taken as the token.
func ParseBearerToken(authorizationHeader string) string {
	token, _ := strings.CutPrefix(authorizationHeader, bearerPrefix)
	return token
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return bearerPrefix + token
}
