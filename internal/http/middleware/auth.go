package middleware

import (
	"net/http"
	"strings"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/gin-gonic/gin"
)

// CookieAccessToken is the cookie carrying the access token. The cookie
// takes precedence over the Authorization header.
const CookieAccessToken = "accessToken"

const contextIdentity = "auth_identity"

// AuthMW authenticates requests and attaches the caller's identity.
type AuthMW struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
}

// NewAuthMW creates new auth middleware
func NewAuthMW(tokenSvc domain.TokenService, userRepo domain.UserRepository) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc, userRepo: userRepo}
}

// ExtractToken returns the access token from the cookie or the bearer
// header, empty when neither is present.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie(CookieAccessToken); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// Authenticate verifies the token and re-fetches the user, so stale
// tokens for deleted or disabled accounts are rejected even while they
// are still cryptographically valid.
func (mw *AuthMW) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "Authentication required. Please provide a valid token.")
			return
		}

		payload, err := mw.tokenSvc.VerifyAccessToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, domain.ErrTokenInvalid.Error())
			return
		}

		user, err := mw.userRepo.FindByID(c.Request.Context(), payload.UserID)
		if err != nil {
			abort(c, http.StatusUnauthorized, domain.ErrUserNotFound.Error())
			return
		}
		if user.IsDisabled {
			abort(c, http.StatusForbidden, domain.ErrUserDisabled.Error())
			return
		}

		c.Set(contextIdentity, &domain.AuthIdentity{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
			Name:   user.Name,
			Token:  token,
		})
		c.Next()
	}
}

// RequireRoles gates a route on membership in the allowed-role set.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, domain.ErrAuthRequired.Error())
			return
		}
		if !allowed[identity.Role] {
			abort(c, http.StatusForbidden, domain.ErrForbidden.Error())
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity set by Authenticate.
func IdentityFrom(c *gin.Context) (*domain.AuthIdentity, bool) {
	v, exists := c.Get(contextIdentity)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*domain.AuthIdentity)
	return identity, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
