package services

import (
	"time"
	"upkeep/config"
	"upkeep/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates session tokens and handles password hashing.
type AuthService struct {
	secret      []byte
	tokenExpiry time.Duration
	log         logger.Logger
}

func NewAuthService(config config.Config) *AuthService {
	return &AuthService{
		secret:      []byte(config.AuthSecret),
		tokenExpiry: time.Duration(config.AuthTokenExpiryHours) * time.Hour,
		log:         logger.New("authService"),
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	log := s.log.Function("HashPassword")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", log.Err("failed to hash password", err)
	}

	return string(hash), nil
}

func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	log := s.log.Function("GenerateToken")

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign token", err, "userID", userID)
	}

	return signed, nil
}

// ValidateToken parses and verifies a session token, returning the user ID it
// was issued for.
func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	log := s.log.Function("ValidateToken")

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, log.Err("failed to parse token", err)
	}

	if !token.Valid {
		return uuid.Nil, log.ErrMsg("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, log.Err("token subject is not a user id", err)
	}

	return userID, nil
}
