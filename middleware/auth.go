package middleware

import (
	"net/http"
	"strings"
	"time"

	"salt-n-sugar-backend/config"
	"salt-n-sugar-backend/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// Claims carries the identity embedded in a bearer token. Admin logins
// populate ID/Username, storefront logins populate UserID/Email; both are
// signed with the same shared secret.
type Claims struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.StandardClaims
}

const tokenValidity = 7 * 24 * time.Hour

// GenerateAdminToken issues a 7-day HS256 token for a back-office admin.
func GenerateAdminToken(admin *models.Admin) (string, error) {
	claims := Claims{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// GenerateUserToken issues a 7-day HS256 token for a storefront customer.
func GenerateUserToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenValidity).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// ParseToken verifies signature and expiry and returns the embedded claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}

// BearerClaims extracts and verifies the Authorization header of a request.
// Returns nil when the header is missing, malformed, or the token does not
// check out — callers treat nil as "no identity".
func BearerClaims(c *gin.Context) *Claims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

// AuthRequired rejects requests without a valid bearer token and stashes
// the claims in the Gin context for handlers.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := BearerClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set("claims", claims)
		c.Set("username", claims.Username)
		c.Set("userId", claims.UserID)
		c.Next()
	}
}

// GetClaims returns the verified claims set by AuthRequired.
func GetClaims(c *gin.Context) *Claims {
	val, ok := c.Get("claims")
	if !ok {
		return nil
	}
	return val.(*Claims)
}
