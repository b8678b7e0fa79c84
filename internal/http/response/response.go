package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes e; server-side failures never echo their cause.
func RespondAPIError(c *gin.Context, e *apierr.Error) {
	if e == nil {
		e = apierr.Internal("internal", nil)
	}
	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	msg := e.Error()
	if status >= http.StatusInternalServerError || e.Err == nil {
		msg = http.StatusText(status)
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    e.Code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
