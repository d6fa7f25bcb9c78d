package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos. El refresh token solo sirve para pedir un par
// nuevo; nunca autentica peticiones de API.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los propios de la aplicación.
// Role viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}

// Generate emite un access token HS256 firmado con userID y role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return sign(secret, userID, role, issuer, TypeAccess, time.Duration(expMinutes)*time.Minute)
}

// GenerateRefresh emite un refresh token con expiración en horas.
func GenerateRefresh(secret, userID, role, issuer string, expHours int) (string, error) {
	return sign(secret, userID, role, issuer, TypeRefresh, time.Duration(expHours)*time.Hour)
}

func sign(secret, userID, role, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un access token y devuelve userID y role.
// Retorna error si el token es inválido, expirado, de otro tipo o con firma incorrecta.
func Parse(secret, tokenString string) (userID, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != TypeAccess {
		return "", "", fmt.Errorf("jwt: se esperaba un access token")
	}
	return claims.UserID, claims.Role, nil
}

// ParseRefresh valida un refresh token y devuelve userID.
func ParseRefresh(secret, tokenString string) (userID string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TypeRefresh {
		return "", fmt.Errorf("jwt: se esperaba un refresh token")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
