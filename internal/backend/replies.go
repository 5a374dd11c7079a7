package backend

import (
	"context"
	"net/url"
	"strconv"

	"auction-web/internal/models"
)

// Reply endpoints
const (
	PathInsertReply = "/insertReply.ajax"
	PathUpdateReply = "/updateReply.ajax"
	PathDeleteReply = "/deleteReply.ajax"
)

// InsertReply adds a comment and returns the board's refreshed reply list
func (c *Client) InsertReply(ctx context.Context, boardNo int64, loginID, content string) ([]models.Reply, error) {
	form := url.Values{
		"id":      {loginID},
		"content": {content},
		"boardNo": {strconv.FormatInt(boardNo, 10)},
	}
	var list []models.Reply
	err := c.postForm(ctx, PathInsertReply, form, &list)
	return list, err
}

// UpdateReply edits a comment
func (c *Client) UpdateReply(ctx context.Context, boardNo, replyNo int64, loginID, content string) ([]models.Reply, error) {
	form := url.Values{
		"no":      {strconv.FormatInt(replyNo, 10)},
		"id":      {loginID},
		"content": {content},
		"boardNo": {strconv.FormatInt(boardNo, 10)},
	}
	var list []models.Reply
	err := c.postForm(ctx, PathUpdateReply, form, &list)
	return list, err
}

// DeleteReply removes a comment
func (c *Client) DeleteReply(ctx context.Context, boardNo, replyNo int64) ([]models.Reply, error) {
	form := url.Values{
		"no":      {strconv.FormatInt(replyNo, 10)},
		"boardNo": {strconv.FormatInt(boardNo, 10)},
	}
	var list []models.Reply
	err := c.postForm(ctx, PathDeleteReply, form, &list)
	return list, err
}
