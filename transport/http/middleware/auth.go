package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"rental/config"
	"rental/infras/jwt"
	"rental/infras/otel"
	"rental/permissions"
	"rental/shared/constant"
	"rental/shared/failure"
	"rental/transport/http/response"

	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

var tokenMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
	// Admin is the chain guarding back-office routes: API key, then bearer token, then role.
	Admin() []func(http.Handler) http.Handler
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func (m *authRoleImpl) Admin() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{m.APIKey, m.Auth, m.RBAC}
}

// bypass reports whether the request was already authenticated by API key or hits a public route.
func (m *authRoleImpl) bypass(request *http.Request) bool {
	if skip, _ := request.Context().Value(skipAuth).(bool); skip {
		return true
	}

	return m.permission != nil && m.permission.IsPublic(routePattern(request), request.Method)
}

// Auth validates the bearer token and stores its claims in the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.bypass(request) {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       routePattern(request),
			"http.method":     request.Method,
		})

		claims, err := m.claims(ctx, request)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = request.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) claims(ctx context.Context, request *http.Request) (*jwt.Claims, error) {
	raw, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return nil, failure.Unauthorized(err.Error())
	}

	claims, err := m.jwtService.ValidateToken(ctx, raw, jwt.AccessToken)
	if err != nil {
		message := "Token validation failed"

		for _, known := range tokenMessages {
			if errors.Is(err, known.err) {
				message = known.message

				break
			}
		}

		return nil, failure.Unauthorized(message)
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("userID", claims.UserID).Msg("token is missing user id or email")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

// RBAC lets a request through when the role in its token is listed for the route, or when
// its email is on the admin allowlist. It must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.bypass(request) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		path := routePattern(request)
		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		email, _ := request.Context().Value(constant.ContextKeyUserEmail).(string)

		if m.permission == nil || !(m.permission.Allows(path, request.Method, role) || m.cfg.IsAdminEmail(email)) {
			attributes := map[string]any{"user_role": role, "reason": "role_not_allowed"}
			if m.permission != nil {
				attributes["allowed_roles"] = m.permission.FindPermissions(path, request.Method).Permissions
			}

			scope.SetAttributes(attributes)
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey authenticates service-to-service calls. A request without the header continues to
// the token check; a wrong key is rejected.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		presented := request.Header.Get(constant.RequestHeaderAPIKey)
		if presented == constant.Empty {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(request.Context(), skipAuth, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextAPIKey)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
