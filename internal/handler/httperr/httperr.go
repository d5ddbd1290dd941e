package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the stable failure body: machine-readable code, optional
// per-field detail, never a raw error message or stack trace.
type Response struct {
	Status int               `json:"-"`
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, code string, fields map[string]string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: code, Fields: fields}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
