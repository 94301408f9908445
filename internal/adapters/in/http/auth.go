package http

import (
	"net/http"
	"strings"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// callerContextKey is where the middleware stores the resolved identity.
const callerContextKey = "caller"

// AuthMiddleware resolves the caller identity from a bearer token.
//
// Requests without an Authorization header pass through anonymously; the
// individual handlers decide whether an identity is required. A present but
// invalid token is rejected immediately.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return rejectToken(ctx, "authorization header must use the Bearer scheme")
			}

			caller, err := parseCaller(tokenString, secret)
			if err != nil {
				return rejectToken(ctx, "invalid or expired token")
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// parseCaller verifies the token signature and extracts the identity claims.
// Tokens carry the user id in "sub" and the role name in "role".
func parseCaller(tokenString, secret string) (account.Caller, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return account.Caller{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return account.Caller{}, jwt.ErrTokenInvalidClaims
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return account.Caller{}, err
	}
	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return account.Caller{}, err
	}

	roleName, _ := claims["role"].(string)
	role, err := account.RoleFromString(roleName)
	if err != nil {
		return account.Caller{}, err
	}

	return account.NewCaller(userID, role)
}

func rejectToken(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// callerFromContext returns the authenticated caller, if any.
func callerFromContext(ctx echo.Context) (account.Caller, bool) {
	caller, ok := ctx.Get(callerContextKey).(account.Caller)
	return caller, ok
}
