package handler

import (
	"context"
	"net/http"
	"net/url"

	"auction-web/internal/bidform"
	"auction-web/internal/itemref"
	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/internal/repository"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bid_form_handler.go -destination=mock_bid_form_handler.go -package=handler

type BidServiceInterface interface {
	Submit(ctx context.Context, st *bidform.PageState, fields itemref.Fields, query url.Values, itemName string) (bidform.Outcome, error)
}

type BidFormHandler struct {
	store   repository.SessionStore
	service BidServiceInterface
}

func NewBidFormHandler(store repository.SessionStore, service BidServiceInterface) *BidFormHandler {
	return &BidFormHandler{store: store, service: service}
}

// OpenHandler handles POST /pages/bid-form
func (h *BidFormHandler) OpenHandler(c *gin.Context) {
	var req helpers.OpenBidFormRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "OpenHandler", err)
		return
	}

	formID, st := h.store.OpenBidForm(helpers.SessionID(c), req.MinBidAmount)
	draft := st.Draft()

	resp := helpers.BidFormResponse{
		FormID:        formID,
		MinBidAmount:  st.MinBidAmount(),
		BidMethod:     string(draft.BidMethod),
		PaymentMethod: string(draft.PaymentMethod),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid form opened")
	helpers.LogSuccess("OpenHandler", "bid form opened", map[string]any{
		"form_id":        formID,
		"min_bid_amount": resp.MinBidAmount,
	})
}

// DraftHandler handles POST /pages/bid-form/:form_id/draft. It recomputes
// the deposit and the submit gate from the whole form.
func (h *BidFormHandler) DraftHandler(c *gin.Context) {
	st, ok := h.form(c, "DraftHandler")
	if !ok {
		return
	}

	var req helpers.BidDraftRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "DraftHandler", err)
		return
	}

	err := st.ApplyDraft(bidform.DraftInput{
		BidAmount:           req.BidAmount,
		BidMethod:           models.BidMethod(req.BidMethod),
		PaymentMethod:       models.PaymentMethod(req.PaymentMethod),
		RefundBank:          req.RefundBank,
		RefundAccountNumber: req.RefundAccountNumber,
		RefundAccountHolder: req.RefundAccountHolder,
	})
	if err != nil {
		_, msg := helpers.MapErrorToHTTP(err)
		helpers.RespondError(c, "DraftHandler", err, msg)
		return
	}

	utils.JSONResponse(c, http.StatusOK, preview(st), "bid draft updated")
}

// SubmitHandler handles POST /pages/bid-form/:form_id/submit. The page's
// own query string is forwarded so the item reference can fall back to it.
func (h *BidFormHandler) SubmitHandler(c *gin.Context) {
	st, ok := h.form(c, "SubmitHandler")
	if !ok {
		return
	}

	var req helpers.SubmitBidRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SubmitHandler", err)
		return
	}

	outcome, err := h.service.Submit(c.Request.Context(), st, req.Fields, c.Request.URL.Query(), req.ItemName)
	if err != nil {
		helpers.RespondError(c, "SubmitHandler", err, outcome.Message)
		return
	}

	resp := helpers.NavigationResponse{Phase: string(outcome.Phase), Redirect: outcome.URL}
	if outcome.Phase == bidform.PhaseConflict {
		resp.Confirm = outcome.Message
		utils.JSONResponse(c, http.StatusConflict, resp, outcome.Message)
		utils.Info("SubmitHandler: bid already exists", map[string]any{"redirect": outcome.URL})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid submitted")
	helpers.LogSuccess("SubmitHandler", "bid submitted", map[string]any{"redirect": outcome.URL})
}

func (h *BidFormHandler) form(c *gin.Context, handlerName string) (*bidform.PageState, bool) {
	st, err := h.store.BidForm(helpers.SessionID(c), c.Param("form_id"))
	if err != nil {
		helpers.RespondError(c, handlerName, err, pageerrors.ErrPageExpired.Error())
		return nil, false
	}
	return st, true
}

func preview(st *bidform.PageState) helpers.BidPreviewResponse {
	return helpers.BidPreviewResponse{
		BidAmountText: st.BidAmountText(),
		DepositAmount: st.Deposit(),
		DepositText:   st.DepositText(),
		SubmitEnabled: st.SubmitEnabled(),
		Phase:         string(st.Phase()),
	}
}
