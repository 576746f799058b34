package public

import (
	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageRequest 留言请求
type MessageRequest struct {
	MessageType int    `json:"message_type"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	File        string `json:"file"`
}

// ListMessages 当前用户留言
func (h *Handler) ListMessages(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	messages, err := h.MessageService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.message_failed", err)
		return
	}
	response.Success(c, messages)
}

// CreateMessage 新建留言
func (h *Handler) CreateMessage(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req MessageRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	message, err := h.MessageService.Create(uid, service.MessageInput{
		MessageType: req.MessageType,
		Subject:     req.Subject,
		Message:     req.Message,
		File:        req.File,
	})
	if err != nil {
		respondWithMappedError(c, err, messageErrorRules, response.CodeInternal, "error.message_failed")
		return
	}
	response.Success(c, message)
}

// DeleteMessage 删除留言
func (h *Handler) DeleteMessage(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.MessageService.Delete(uid, id); err != nil {
		respondWithMappedError(c, err, messageErrorRules, response.CodeInternal, "error.message_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
