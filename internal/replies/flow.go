// Package replies posts board comments and renders the refreshed list the
// backend answers with.
package replies

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=flow.go -destination=mock_flow.go -package=replies

//go:embed templates/replies.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/replies.tmpl"))

// ReplyAPI is the comment backend; every call answers with the full list
type ReplyAPI interface {
	InsertReply(ctx context.Context, boardNo int64, loginID, content string) ([]models.Reply, error)
	UpdateReply(ctx context.Context, boardNo, replyNo int64, loginID, content string) ([]models.Reply, error)
	DeleteReply(ctx context.Context, boardNo, replyNo int64) ([]models.Reply, error)
}

// Op names a comment action
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var failureText = map[Op]string{
	OpInsert: "댓글 등록에 실패했습니다.",
	OpUpdate: "댓글 수정에 실패했습니다.",
	OpDelete: "댓글 삭제에 실패했습니다.",
}

// Flow runs comment actions for one board
type Flow struct {
	api ReplyAPI
}

// NewFlow creates a Flow
func NewFlow(api ReplyAPI) *Flow {
	return &Flow{api: api}
}

// Insert adds a comment and returns the rendered list
func (f *Flow) Insert(ctx context.Context, boardNo int64, loginID, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", pageerrors.ErrEmptyContent
	}
	list, err := f.api.InsertReply(ctx, boardNo, loginID, content)
	return f.done(OpInsert, boardNo, list, err)
}

// Update edits a comment and returns the rendered list
func (f *Flow) Update(ctx context.Context, boardNo, replyNo int64, loginID, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", pageerrors.ErrEmptyContent
	}
	list, err := f.api.UpdateReply(ctx, boardNo, replyNo, loginID, content)
	return f.done(OpUpdate, boardNo, list, err)
}

// Delete removes a comment and returns the rendered list
func (f *Flow) Delete(ctx context.Context, boardNo, replyNo int64) (string, error) {
	list, err := f.api.DeleteReply(ctx, boardNo, replyNo)
	return f.done(OpDelete, boardNo, list, err)
}

func (f *Flow) done(op Op, boardNo int64, list []models.Reply, err error) (string, error) {
	if err != nil {
		utils.Error("replies: request failed", map[string]any{
			"op":       string(op),
			"board_no": boardNo,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("replies: %s: %w", op, err)
	}
	return Render(boardNo, list)
}

// Render renders a reply list; controls appear only on editable replies
func Render(boardNo int64, list []models.Reply) (string, error) {
	var buf bytes.Buffer
	data := struct {
		BoardNo int64
		Replies []models.Reply
	}{boardNo, list}
	if err := tmpl.ExecuteTemplate(&buf, "replies", data); err != nil {
		return "", fmt.Errorf("replies: render: %w", err)
	}
	return buf.String(), nil
}

// Message is the alert text for a failed op
func Message(op Op, err error) string {
	if errors.Is(err, pageerrors.ErrEmptyContent) {
		return err.Error()
	}
	return failureText[op]
}
