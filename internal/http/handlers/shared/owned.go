package shared

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mxshop-next/internal/authz"
	"github.com/mxshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// maxOwnedBodyBytes 归属资源请求体上限
const maxOwnedBodyBytes = 1 << 20

// ownerFields 客户端不允许指定的归属字段
var ownerFields = []string{"user", "user_id"}

// BindOwned 绑定归属于当前用户的资源请求体，剔除客户端提交的归属字段。
func BindOwned(c *gin.Context, dst interface{}) error {
	if c.Request != nil && c.Request.Body != nil {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxOwnedBodyBytes))
		if err != nil {
			return err
		}
		body = stripOwnerFields(body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	return c.ShouldBindJSON(dst)
}

func stripOwnerFields(body []byte) []byte {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return body
	}
	stripped := false
	for _, field := range ownerFields {
		if _, ok := payload[field]; ok {
			delete(payload, field)
			stripped = true
		}
	}
	if !stripped {
		return body
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return out
}

// EnsureOwner 资源读出后再次确认归属，非本人的写操作返回 403。
func EnsureOwner(c *gin.Context, ownerID, userID uint) bool {
	if authz.OwnerOrReadOnly(c.Request.Method, ownerID, userID) {
		return true
	}
	RespondError(c, response.CodeForbidden, "error.forbidden", nil)
	return false
}
