package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/student"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MeResponse struct {
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		ExpiresAt time.Time `json:"expires_at"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}

type authenticationApi struct {
	auth     *JWTAuth
	svc      *student.Service
	validate *validator.Validate
}

func registerAuthenticationAPI(g *echo.Group, jwt echo.MiddlewareFunc, auth *JWTAuth, svc *student.Service, validate *validator.Validate) {
	api := authenticationApi{
		auth:     auth,
		svc:      svc,
		validate: validate,
	}

	ag := g.Group("/authentication")
	ag.POST("/login", api.login)
	ag.GET("/me", api.me, jwt)
}

// Handlers

func (api *authenticationApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	stdt, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == student.ErrInvalidCredentials {
			return ctx.JSON(http.StatusUnauthorized, LoginResponse{})
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := api.auth.GenerateToken(api.auth.GetStudentClaims(stdt))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *authenticationApi) me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	resp := MeResponse{Email: claims.Subject, Name: claims.Name}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return ctx.JSON(http.StatusOK, resp)
}
