package middleware

import (
	"strings"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/service"
	"wayfare/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileKey is the Echo context key under which the authenticated principal's
// persisted profile is stored.
const ProfileKey = "profile"

// AuthMiddleware provides middleware for JWT authentication and authorization.
// The token only identifies the principal; the persisted profile loaded here
// is the authority for every role decision downstream.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	profileUC usecase.ProfileUsecase
	cfg       *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileUC usecase.ProfileUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileUC: profileUC, cfg: cfg}
}

// Authenticate validates the JWT access token and loads the principal's
// persisted profile, creating it on first contact.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := m.resolveProfile(c)
		if err != nil {
			return err
		}

		c.Set(ProfileKey, profile)

		return next(c)
	}
}

// OptionalAuthenticate loads the profile when a bearer token is present and
// lets anonymous requests through without one.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		profile, err := m.resolveProfile(c)
		if err != nil {
			return err
		}

		c.Set(ProfileKey, profile)

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to the given
// roles of the persisted profile. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := c.Get(ProfileKey).(*entity.Profile)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("profile missing from context")
			}

			for _, role := range roles {
				if profile.Role == role {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden.WrapMessage("insufficient role")
		}
	}
}

// resolveProfile validates the bearer token and returns the persisted profile
// for its subject. The role claim only ever seeds a brand-new profile.
// Rejections are returned as errors so the chain terminates; the error
// handler renders the 401 envelope.
func (m *AuthMiddleware) resolveProfile(c echo.Context) (*entity.Profile, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("failed to parse token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("subject missing from token")
	}
	principalID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid subject format in token")
	}

	roleHint, _ := claims["role"].(string)

	profile, err := m.profileUC.EnsureProfile(c.Request().Context(), principalID, roleHint)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
