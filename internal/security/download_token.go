package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// DownloadClaims authorizes a single document download for a short window.
// Portal sessions are opaque server-side tokens; these signed tokens exist
// only so download links can be handed to a browser without a session cookie.
type DownloadClaims struct {
	DocumentID int32 `json:"document_id"`
	UserID     int32 `json:"user_id"`
	jwt.RegisteredClaims
}

type DownloadTokenManager interface {
	Generate(documentID, userID int32, expiresIn time.Duration) (string, error)
	Validate(tokenString string) (*DownloadClaims, error)
}

type downloadTokenManager struct {
	secret []byte
}

func NewDownloadTokenManager(secret string) DownloadTokenManager {
	return &downloadTokenManager{secret: []byte(secret)}
}

func (m *downloadTokenManager) Generate(documentID, userID int32, expiresIn time.Duration) (string, error) {
	claims := DownloadClaims{
		DocumentID: documentID,
		UserID:     userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "autoportal",
			Audience:  jwt.ClaimStrings{"document-download"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *downloadTokenManager) Validate(tokenString string) (*DownloadClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DownloadClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*DownloadClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
