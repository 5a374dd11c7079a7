package handler

import (
	"context"
	"net/http"

	"auction-web/internal/account"
	"auction-web/internal/repository"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=account_handler.go -destination=mock_account_handler.go -package=handler

type RecoveryServiceInterface interface {
	FindID(ctx context.Context, form account.FindIDForm) (string, error)
	Verify(ctx context.Context, st *account.RecoveryState, form account.FindPasswordForm) error
	Reset(ctx context.Context, st *account.RecoveryState, form account.ResetForm) (string, error)
}

type JoinServiceInterface interface {
	CheckID(ctx context.Context, st *account.JoinState, id string) (string, error)
	Validate(st *account.JoinState, form account.JoinForm) error
}

type ModifyServiceInterface interface {
	Unlock(ctx context.Context, id, pass string) (account.Profile, error)
}

type AccountHandler struct {
	store    repository.SessionStore
	recovery RecoveryServiceInterface
	join     JoinServiceInterface
	modify   ModifyServiceInterface
}

func NewAccountHandler(store repository.SessionStore, recovery RecoveryServiceInterface, join JoinServiceInterface, modify ModifyServiceInterface) *AccountHandler {
	return &AccountHandler{store: store, recovery: recovery, join: join, modify: modify}
}

// FindIDHandler handles POST /pages/find-id
func (h *AccountHandler) FindIDHandler(c *gin.Context) {
	var form account.FindIDForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "FindIDHandler", err)
		return
	}

	id, err := h.recovery.FindID(c.Request.Context(), form)
	if err != nil {
		helpers.RespondError(c, "FindIDHandler", err, account.Message(err, account.MsgServerError))
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FindIDResponse{ID: id}, "아이디를 찾았습니다.")
	helpers.LogSuccess("FindIDHandler", "member id found", nil)
}

// VerifyHandler handles POST /pages/find-password/verify
func (h *AccountHandler) VerifyHandler(c *gin.Context) {
	var form account.FindPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "VerifyHandler", err)
		return
	}

	st := h.store.Recovery(helpers.SessionID(c))
	if err := h.recovery.Verify(c.Request.Context(), st, form); err != nil {
		helpers.RespondError(c, "VerifyHandler", err, account.Message(err, account.MsgServerError))
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "회원 정보가 확인되었습니다.")
	helpers.LogSuccess("VerifyHandler", "member verified", map[string]any{"member_id": form.ID})
}

// ResetHandler handles POST /pages/find-password/reset
func (h *AccountHandler) ResetHandler(c *gin.Context) {
	var form account.ResetForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "ResetHandler", err)
		return
	}

	st := h.store.Recovery(helpers.SessionID(c))
	target, err := h.recovery.Reset(c.Request.Context(), st, form)
	if err != nil {
		helpers.RespondError(c, "ResetHandler", err, account.Message(err, account.MsgServerError))
		return
	}

	resp := helpers.NavigationResponse{Redirect: target, Confirm: account.PasswordChangedMessage()}
	utils.JSONResponse(c, http.StatusOK, resp, account.PasswordChangedMessage())
	helpers.LogSuccess("ResetHandler", "password reset", map[string]any{"member_id": form.ID})
}

// IDCheckHandler handles POST /pages/join/id-check
func (h *AccountHandler) IDCheckHandler(c *gin.Context) {
	var req helpers.IDCheckRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "IDCheckHandler", err)
		return
	}

	st := h.store.Join(helpers.SessionID(c))
	msg, err := h.join.CheckID(c.Request.Context(), st, req.ID)
	if err != nil {
		helpers.RespondError(c, "IDCheckHandler", err, account.Message(err, account.MsgIDCheckError))
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, msg)
}

// JoinValidateHandler handles POST /pages/join/validate, the gate run before
// the sign-up form is submitted.
func (h *AccountHandler) JoinValidateHandler(c *gin.Context) {
	var form account.JoinForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "JoinValidateHandler", err)
		return
	}

	st := h.store.Join(helpers.SessionID(c))
	if err := h.join.Validate(st, form); err != nil {
		helpers.RespondError(c, "JoinValidateHandler", err, err.Error())
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "ok")
}

// UnlockHandler handles POST /pages/modify/unlock
func (h *AccountHandler) UnlockHandler(c *gin.Context) {
	var req helpers.UnlockRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "UnlockHandler", err)
		return
	}

	profile, err := h.modify.Unlock(c.Request.Context(), req.ID, req.Pass)
	if err != nil {
		helpers.RespondError(c, "UnlockHandler", err, account.Message(err, account.MsgPassCheckError))
		return
	}

	resp := helpers.ProfileResponse{Name: profile.Name, Mobile1: profile.Mobile1, Mobile2: profile.Mobile2}
	utils.JSONResponse(c, http.StatusOK, resp, "비밀번호가 확인되었습니다.")
	helpers.LogSuccess("UnlockHandler", "modify form unlocked", map[string]any{"member_id": req.ID})
}
