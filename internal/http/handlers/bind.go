package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/ctxutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// bindJSON decodes the request body into dst. An empty body is allowed when
// optional is set; anything unparseable is answered with 400.
func bindJSON(c *gin.Context, dst any, optional bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if optional && errors.Is(err, io.EOF) {
		return true
	}
	response.RespondAPIError(c, apierr.BadRequest("invalid_json", err))
	return false
}

func respondInternal(c *gin.Context, log *logger.Logger, msg, code string, err error) {
	fields := append([]interface{}{"code", code, "error", err}, ctxutil.LogFields(c.Request.Context())...)
	log.Error(msg, fields...)
	_ = c.Error(err)
	response.RespondAPIError(c, apierr.Internal(code, err))
}

// decimalText accepts a JSON number or a JSON string and keeps its text, so
// money never passes through float64.
type decimalText string

func (d *decimalText) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		*d = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*d = decimalText(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*d = decimalText(n.String())
	return nil
}
