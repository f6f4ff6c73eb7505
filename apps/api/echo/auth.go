package echoapi

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/student"
)

const contextClaimsKey = "claims"

// Claims represents the authorization claims transmitted via a JWT.
// Subject holds the student's email.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

func (c Claims) Person() core.Person {
	return core.Person{ID: c.Subject, Name: c.Name, Email: c.Subject}
}

// JWTAuth issues and verifies HS256 tokens signed with the application secret.
type JWTAuth struct {
	key        []byte
	issuer     string
	expiration time.Duration
	nowFunc    func() time.Time
}

func NewJWTAuth(conf *core.Config) *JWTAuth {
	return &JWTAuth{
		key:        []byte(conf.SecretKey),
		issuer:     conf.AppName,
		expiration: conf.Server.JWTExpirationDelta,
		nowFunc:    time.Now,
	}
}

func (a *JWTAuth) GetStudentClaims(stdt student.Student) *Claims {
	now := a.nowFunc()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   stdt.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiration)),
		},
		Name: stdt.Name,
	}
}

// GenerateToken generates a signed JWT token string representing the student Claims.
func (a *JWTAuth) GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(a.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func (a *JWTAuth) ParseToken(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// Middleware only lets through requests carrying a valid "Authorization: Bearer <token>" header.
// The verified *Claims are stored in the context under contextClaimsKey.
func (a *JWTAuth) Middleware() echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		ContextKey:  contextClaimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(auth string, _ echo.Context) (interface{}, error) {
			return a.ParseToken(auth)
		},
	})
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if claims, ok := ctx.Get(contextClaimsKey).(*Claims); ok {
		return *claims, nil
	}
	return Claims{}, errUnauthorized
}
