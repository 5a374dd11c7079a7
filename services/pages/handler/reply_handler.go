package handler

import (
	"context"
	"net/http"
	"strconv"

	"auction-web/internal/replies"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=reply_handler.go -destination=mock_reply_handler.go -package=handler

type ReplyServiceInterface interface {
	Insert(ctx context.Context, boardNo int64, loginID, content string) (string, error)
	Update(ctx context.Context, boardNo, replyNo int64, loginID, content string) (string, error)
	Delete(ctx context.Context, boardNo, replyNo int64) (string, error)
}

type ReplyHandler struct {
	service ReplyServiceInterface
}

func NewReplyHandler(service ReplyServiceInterface) *ReplyHandler {
	return &ReplyHandler{service: service}
}

// InsertHandler handles POST /pages/boards/:board_no/replies
func (h *ReplyHandler) InsertHandler(c *gin.Context) {
	var req helpers.ReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "InsertHandler", err)
		return
	}
	boardNo := paramInt(c, "board_no")

	html, err := h.service.Insert(c.Request.Context(), boardNo, req.LoginID, req.Content)
	h.respond(c, "InsertHandler", replies.OpInsert, boardNo, html, err)
}

// UpdateHandler handles POST /pages/boards/:board_no/replies/:reply_no/update
func (h *ReplyHandler) UpdateHandler(c *gin.Context) {
	var req helpers.ReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "UpdateHandler", err)
		return
	}
	boardNo := paramInt(c, "board_no")

	html, err := h.service.Update(c.Request.Context(), boardNo, paramInt(c, "reply_no"), req.LoginID, req.Content)
	h.respond(c, "UpdateHandler", replies.OpUpdate, boardNo, html, err)
}

// DeleteHandler handles POST /pages/boards/:board_no/replies/:reply_no/delete
func (h *ReplyHandler) DeleteHandler(c *gin.Context) {
	boardNo := paramInt(c, "board_no")

	html, err := h.service.Delete(c.Request.Context(), boardNo, paramInt(c, "reply_no"))
	h.respond(c, "DeleteHandler", replies.OpDelete, boardNo, html, err)
}

func (h *ReplyHandler) respond(c *gin.Context, handlerName string, op replies.Op, boardNo int64, html string, err error) {
	if err != nil {
		helpers.RespondError(c, handlerName, err, replies.Message(op, err))
		return
	}
	utils.HTMLFragment(c, http.StatusOK, html)
	helpers.LogSuccess(handlerName, "replies rendered", map[string]any{
		"op":       string(op),
		"board_no": boardNo,
	})
}

// paramInt reads a numeric path parameter; anything unparsable is 0
func paramInt(c *gin.Context, name string) int64 {
	n, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return n
}
