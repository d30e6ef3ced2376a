package middleware

import (
	"errors"
	"slices"
	"strings"

	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/auth/jwt"
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/farmchainx/farmchainx/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, loads the account it names and
// stores both claims and user in the context. Unapproved accounts are refused.
func JWTAuthMiddleware(jwtService *jwt.Service, db database.Database, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(cnst.HeaderAuth)
		if authHeader == "" {
			i18n.RespondWithError(c, i18n.ErrorMissingToken)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, cnst.BearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			i18n.RespondWithError(c, i18n.ErrorInvalidTokenType)
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				i18n.RespondWithError(c, i18n.ErrorTokenExpired)
				return
			}
			i18n.RespondWithError(c, i18n.ErrorInvalidToken)
			return
		}

		user, err := db.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				i18n.RespondWithError(c, i18n.ErrorInvalidToken)
				return
			}
			logger.Error("failed to load token user", zap.Uint("user_id", claims.UserID), zap.Error(err))
			i18n.RespondWithError(c, i18n.ErrInternalServer)
			return
		}

		if !user.Approved {
			i18n.RespondWithError(c, i18n.ErrorAccountPending.WithHttpCode(i18n.ErrorForbidden))
			return
		}

		c.Set(cnst.CtxKeyClaims, claims)
		c.Set(cnst.CtxKeyUser, user)
		c.Next()
	}
}

// RequireRoles lets the request through only when the authenticated user has
// one of roles. It must run after JWTAuthMiddleware.
func RequireRoles(roles ...database.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			i18n.RespondWithError(c, i18n.ErrUnauthorized)
			return
		}
		if !slices.Contains(roles, user.Role) {
			i18n.RespondWithError(c, i18n.ErrorInsufficientRole.WithParam("Role", string(user.Role)))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account loaded by JWTAuthMiddleware
func CurrentUser(c *gin.Context) (*database.User, bool) {
	v, ok := c.Get(cnst.CtxKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*database.User)
	return user, ok && user != nil
}

// CurrentClaims returns the validated token claims
func CurrentClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(cnst.CtxKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
