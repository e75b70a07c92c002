package utils

import (
	"littlelemon/authz"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

func SetCaller(c *gin.Context, caller *authz.Caller) {
	c.Set(callerKey, caller)
}

// CurrentCaller returns the authenticated caller, or nil for anonymous
// requests.
func CurrentCaller(c *gin.Context) *authz.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	caller, ok := v.(*authz.Caller)
	if !ok {
		return nil
	}
	return caller
}
