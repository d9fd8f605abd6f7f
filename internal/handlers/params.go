package handlers

import (
    "strconv"

    "github.com/gin-gonic/gin"
)

// uintParam parses an integer surrogate key out of a path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
    raw := c.Param(name)
    parsed, err := strconv.ParseUint(raw, 10, 64)
    if err != nil {
        return 0, false
    }
    return uint(parsed), true
}
