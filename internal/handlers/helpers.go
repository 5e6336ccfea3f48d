package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LizServicos/home-services-api/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func currentUserType(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUserType); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
