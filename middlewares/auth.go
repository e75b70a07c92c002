package middlewares

import (
	"fmt"
	"log"
	"strings"

	"littlelemon/authz"
	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticate validates the bearer token and loads the caller with their
// current group membership into the request context. Requests without a
// valid token are rejected.
func Authenticate(userRepo *repository.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenStr, &utils.Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*utils.Claims)
		if !ok || claims.UserID == 0 {
			resp.Unauthorized(c)
			c.Abort()
			return
		}

		// Groups are read per request so a revoked role stops working
		// without waiting for the token to expire.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			log.Println("auth: load caller:", err)
			resp.Unauthorized(c)
			c.Abort()
			return
		}

		utils.SetCaller(c, authz.CallerFromUser(user))
		c.Next()
	}
}

// Authorize consults the decision table for the route's action/resource
// pair. It runs after Authenticate on every protected route.
func Authorize(action authz.Action, resource authz.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := utils.CurrentCaller(c)
		if authz.Allow(caller, action, resource) {
			c.Next()
			return
		}
		if caller == nil {
			resp.Unauthorized(c)
		} else {
			resp.Forbidden(c)
		}
		c.Abort()
	}
}
