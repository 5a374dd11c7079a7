package backend

import (
	"context"
	"net/url"

	"auction-web/internal/models"
)

// Member endpoints
const (
	PathFindID        = "/findId"
	PathFindPassword  = "/findPassword"
	PathResetPassword = "/resetPassword"
	PathIDCheck       = "/idCheck"
	PathIsPass        = "/isPass"
	PathMemberInfo    = "/getMemberInfo"
	PathLogin         = "/memberLogin"
)

func (c *Client) member(ctx context.Context, path string, form url.Values) (models.MemberResult, error) {
	var res models.MemberResult
	err := c.postForm(ctx, path, form, &res)
	return res, err
}

// FindID looks a member id up by name and mobile number
func (c *Client) FindID(ctx context.Context, name, mobile1, mobile2 string) (models.MemberResult, error) {
	return c.member(ctx, PathFindID, url.Values{
		"name":    {name},
		"mobile1": {mobile1},
		"mobile2": {mobile2},
	})
}

// FindPassword verifies a member's identity before a password reset
func (c *Client) FindPassword(ctx context.Context, id, name, mobile1, mobile2 string) (models.MemberResult, error) {
	return c.member(ctx, PathFindPassword, url.Values{
		"id":      {id},
		"name":    {name},
		"mobile1": {mobile1},
		"mobile2": {mobile2},
	})
}

// ResetPassword sets a new password for a verified member
func (c *Client) ResetPassword(ctx context.Context, id, newPassword string) (models.MemberResult, error) {
	return c.member(ctx, PathResetPassword, url.Values{
		"id":          {id},
		"newPassword": {newPassword},
	})
}

// IDCheck asks whether a member id is still free
func (c *Client) IDCheck(ctx context.Context, id string) (models.MemberResult, error) {
	return c.member(ctx, PathIDCheck, url.Values{"id": {id}})
}

// IsPass checks the current password before profile edits
func (c *Client) IsPass(ctx context.Context, id, pass string) (models.MemberResult, error) {
	return c.member(ctx, PathIsPass, url.Values{"id": {id}, "pass": {pass}})
}

// MemberInfo loads the profile shown in the edit form
func (c *Client) MemberInfo(ctx context.Context, id string) (models.MemberResult, error) {
	return c.member(ctx, PathMemberInfo, url.Values{"id": {id}})
}
