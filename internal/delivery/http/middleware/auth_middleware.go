package middleware

import (
	"libris/internal/delivery/http/response"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const principalKey = "principal"

// AuthMiddleware gates routes behind HTTP basic authentication. Credentials
// are verified against the user store on every request; no session state is
// kept server-side.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the basic-auth credentials and stores the resulting
// principal on the request context. Missing and wrong credentials both answer
// 401 with the same body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, password, ok := c.Request().BasicAuth()
		if !ok {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)

			return response.Unauthorized(c, "INVALID_CREDENTIALS", domainerrors.ErrInvalidCredentials.Message())
		}

		principal, err := m.authUC.Authenticate(c.Request().Context(), username, password)
		if err != nil {
			if errors.Is(err, domainerrors.ErrInvalidCredentials) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)

				return response.Unauthorized(c, "INVALID_CREDENTIALS", domainerrors.ErrInvalidCredentials.Message())
			}

			return errors.WithStack(err)
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// Principal returns the authenticated principal, or nil on an unauthenticated
// route.
func Principal(c echo.Context) *entity.Principal {
	p, _ := c.Get(principalKey).(*entity.Principal)

	return p
}
