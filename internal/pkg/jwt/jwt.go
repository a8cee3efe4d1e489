package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies administrative tokens issued by the auth collaborator.
// This service never issues tokens of its own.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ValidateToken(tokenString string) (subject string, role string, err error)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ValidateToken decodes a token and returns its subject and role claims.
func (j *JWTService) ValidateToken(tokenString string) (string, string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	subject := token.Subject()

	role := ""
	if roleVal, ok := token.Get("role"); ok {
		role, _ = roleVal.(string)
	}

	return subject, role, nil
}
