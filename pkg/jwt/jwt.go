package jwt

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Durações de cada tipo de token
const (
	SessionExpiry  = 7 * 24 * time.Hour
	RecoveryExpiry = 15 * time.Minute
)

// Finalidades possíveis; um token de recuperação nunca vale como sessão.
const (
	PurposeSession         = "session"
	PurposeRecovery        = "password-recovery"
	PurposeRecoverySession = "password-recovery-session"
)

func GenerateToken(email string, adminID uint, purpose string, expiry time.Duration) (string, error) {
	secretKey := []byte(os.Getenv("JWT_SECRET"))

	claims := jwt.MapClaims{
		"sub":      email,
		"email":    email,
		"admin_id": adminID,
		"purpose":  purpose,
		"exp":      time.Now().Add(expiry).Unix(),
		"iat":      time.Now().Unix(),
		"iss":      os.Getenv("JWT_ISSUER"),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken valida assinatura, expiração e finalidade.
func ValidateToken(tokenString, purpose string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if p, _ := claims["purpose"].(string); p != purpose {
		return nil, fmt.Errorf("token purpose mismatch")
	}

	return claims, nil
}
