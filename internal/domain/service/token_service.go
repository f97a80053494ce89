package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the bearer token.
type Claims struct {
	StaffID uint   `json:"staffId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed bearer token for a staff account.
	GenerateToken(staffID uint, email string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
