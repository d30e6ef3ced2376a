package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/farmchainx/farmchainx/internal/common/dto"
	"github.com/farmchainx/farmchainx/internal/i18n"
	"github.com/farmchainx/farmchainx/pkg/trace"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// maxPasswordLength is the longest input bcrypt accepts
const maxPasswordLength = 72

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Register handles account sign-up
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), cnst.SpanUserRegister)
	defer scope.End()
	ctx := scope.Ctx

	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	switch {
	case email == "":
		i18n.RespondWithError(c, i18n.ErrorEmailRequired)
		return
	case strings.TrimSpace(req.Password) == "":
		i18n.RespondWithError(c, i18n.ErrorPasswordRequired)
		return
	case fullName == "":
		i18n.RespondWithError(c, i18n.ErrorFullNameRequired)
		return
	case strings.TrimSpace(req.Role) == "":
		i18n.RespondWithError(c, i18n.ErrorRoleRequired)
		return
	case !emailPattern.MatchString(email):
		i18n.RespondWithError(c, i18n.ErrorInvalidEmail)
		return
	case len(req.Password) < minPasswordLength:
		i18n.RespondWithError(c, i18n.ErrorPasswordTooShort)
		return
	case len(req.Password) > maxPasswordLength:
		i18n.RespondWithError(c, i18n.ErrorPasswordTooLong)
		return
	}

	exists, err := h.db.EmailExists(ctx, email)
	if err != nil {
		scope.Fail(err)
		h.storeError(c, err, nil, "failed to check email")
		return
	}
	if exists {
		scope.WithAttrs(attribute.String(cnst.AttrErrorReason, i18n.TagEmailExists))
		i18n.RespondWithError(c, i18n.ErrorEmailExists)
		return
	}

	role := database.NormalizeRole(req.Role)
	if !role.SelfRegistrable() {
		i18n.RespondWithError(c, i18n.ErrorInvalidRole)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		scope.Fail(err)
		h.logger.Error("failed to hash password", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user := &database.User{
		Email:        email,
		Password:     string(hash),
		FullName:     fullName,
		Role:         role,
		Approved:     true,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		FarmName:     strings.TrimSpace(req.FarmName),
		FarmSize:     strings.TrimSpace(req.FarmSize),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		DeliveryArea: strings.TrimSpace(req.DeliveryArea),
		Preferences:  strings.TrimSpace(req.Preferences),
	}
	if err := h.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			i18n.RespondWithError(c, i18n.ErrorEmailExists)
			return
		}
		scope.Fail(err)
		h.storeError(c, err, nil, "failed to create user")
		return
	}

	scope.WithAttrs(
		attribute.Int64(cnst.AttrUserID, int64(user.ID)),
		attribute.String(cnst.AttrUserRole, string(user.Role)),
	)
	h.metrics.UserRegistered(string(user.Role))
	h.cache.Invalidate(ctx, cache.UserStatsKey())
	h.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	i18n.Success(i18n.SuccessRegistered).
		With("user", toUserInfo(user)).
		Send(c)
}

// Login checks credentials and issues a token
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), cnst.SpanUserLogin)
	defer scope.End()
	ctx := scope.Ctx

	email := strings.TrimSpace(req.Email)
	if email == "" {
		i18n.RespondWithError(c, i18n.ErrorEmailRequired)
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		i18n.RespondWithError(c, i18n.ErrorPasswordRequired)
		return
	}

	user, err := h.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.metrics.LoginAttempt("invalid")
			i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
			return
		}
		scope.Fail(err)
		h.storeError(c, err, nil, "failed to load user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.metrics.LoginAttempt("invalid")
		scope.WithAttrs(attribute.String(cnst.AttrErrorReason, i18n.TagInvalidCredentials))
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	if !user.Approved {
		h.metrics.LoginAttempt("pending")
		i18n.RespondWithError(c, i18n.ErrorAccountPending)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		scope.Fail(err)
		h.logger.Error("failed to generate token", zap.Uint("user_id", user.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	scope.WithAttrs(
		attribute.Int64(cnst.AttrUserID, int64(user.ID)),
		attribute.String(cnst.AttrUserRole, string(user.Role)),
	)
	h.metrics.LoginAttempt("success")

	i18n.Success(i18n.SuccessLogin).
		With("user", toUserInfo(user)).
		With("role", string(user.Role)).
		With("token", token).
		Send(c)
}

// AuthStatus reports that the auth endpoints are reachable
func (h *Handler) AuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"service":     "Auth Controller",
		"timestamp":   timestamp(h.now()),
		"message":     i18n.TranslateMessage(c, i18n.SuccessServiceRunning, nil),
		"corsEnabled": true,
	})
}

// TestDBConnection counts users to prove the database answers
func (h *Handler) TestDBConnection(c *gin.Context) {
	count, err := h.db.CountUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("database probe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":     "ERROR",
			"connection": "Failed",
			"error":      i18n.TranslateError(c, i18n.ErrorDatabaseUnavailable),
			"timestamp":  timestamp(h.now()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "SUCCESS",
		"connection": "Active",
		"message":    i18n.TranslateMessage(c, i18n.SuccessDatabaseConnected, nil),
		"totalUsers": count,
		"timestamp":  timestamp(h.now()),
	})
}
