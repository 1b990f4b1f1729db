package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of issued tokens.
const TokenTTL = 2 * time.Hour

// Claims holds the identity recovered from a verified token.
type Claims struct {
	UserID string
	Nombre string
}

// signToken issues an HS256 token binding the user's id and display name,
// expiring TokenTTL after now.
func signToken(user *User, secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"nombre":  user.Nombre,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry and recovers the embedded identity.
// A bad signature, a wrong signing method or an expired token all fail the
// same way; there is no partial trust.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidTokenMissingUserID
	}
	nombre, ok := mapClaims["nombre"].(string)
	if !ok || nombre == "" {
		return nil, ErrInvalidTokenMissingNombre
	}

	return &Claims{UserID: userID, Nombre: nombre}, nil
}
