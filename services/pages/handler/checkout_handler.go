package handler

import (
	"context"
	"net/http"
	"net/url"

	"auction-web/internal/checkout"
	"auction-web/internal/itemref"
	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=checkout_handler.go -destination=mock_checkout_handler.go -package=handler

type CheckoutServiceInterface interface {
	Prepare(ctx context.Context, p checkout.PayParams) (models.SDKRequest, error)
	Complete(ctx context.Context, query url.Values, merchantUID string, rsp models.SDKResponse) string
}

type PaymentsServiceInterface interface {
	Delete(ctx context.Context, paymentID int64) error
}

type CheckoutHandler struct {
	service  CheckoutServiceInterface
	payments PaymentsServiceInterface
}

func NewCheckoutHandler(service CheckoutServiceInterface, payments PaymentsServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: service, payments: payments}
}

// PrepareHandler handles POST /pages/checkout/prepare. The answer is the
// request the browser hands to the payment SDK.
func (h *CheckoutHandler) PrepareHandler(c *gin.Context) {
	var req helpers.PrepareCheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "PrepareHandler", err)
		return
	}

	if !req.SDKLoaded {
		err := pageerrors.ErrPaymentSDKUnavailable
		helpers.RespondError(c, "PrepareHandler", err, err.Error())
		return
	}

	params := checkout.PayParams{
		Page: checkout.Page{
			Amount:     req.Amount,
			ItemName:   req.ItemName,
			BuyerName:  req.BuyerName,
			BuyerEmail: req.BuyerEmail,
			BuyerPhone: req.BuyerPhone,
			Fields:     req.Fields,
		},
		Query: c.Request.URL.Query(),
	}

	sdkReq, err := h.service.Prepare(c.Request.Context(), params)
	if err != nil {
		helpers.RespondError(c, "PrepareHandler", err, checkout.PrepareMessage(err))
		return
	}

	utils.JSONResponse(c, http.StatusOK, sdkReq, "payment prepared")
	helpers.LogSuccess("PrepareHandler", "payment prepared", map[string]any{
		"merchant_uid": sdkReq.MerchantUID,
		"amount":       sdkReq.Amount,
	})
}

// CallbackHandler handles POST /pages/checkout/callback and answers with the
// page to navigate to, success or fail.
func (h *CheckoutHandler) CallbackHandler(c *gin.Context) {
	var req helpers.CheckoutCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CallbackHandler", err)
		return
	}

	target := h.service.Complete(c.Request.Context(), c.Request.URL.Query(), req.MerchantUID, req.Response)

	utils.JSONResponse(c, http.StatusOK, helpers.NavigationResponse{Redirect: target}, "payment callback handled")
	helpers.LogSuccess("CallbackHandler", "payment callback handled", map[string]any{
		"merchant_uid": req.MerchantUID,
		"redirect":     target,
	})
}

// CheckoutLinkHandler handles GET /pages/payments/checkout-link
func (h *CheckoutHandler) CheckoutLinkHandler(c *gin.Context) {
	query := c.Request.URL.Query()

	// a missing reference only matters when there is no payment id either
	ref, _ := itemref.Resolve(itemref.Fields{}, query)

	target, err := itemref.CheckoutPath(query.Get("paymentId"), ref)
	if err != nil {
		helpers.RespondError(c, "CheckoutLinkHandler", err, err.Error())
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NavigationResponse{Redirect: target}, "checkout link built")
}

// DeletePaymentHandler handles POST /pages/payments/:payment_id/delete
func (h *CheckoutHandler) DeletePaymentHandler(c *gin.Context) {
	paymentID := paramInt(c, "payment_id")

	if err := h.payments.Delete(c.Request.Context(), paymentID); err != nil {
		helpers.RespondError(c, "DeletePaymentHandler", err, checkout.DeleteMessage(err))
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "삭제되었습니다.")
	helpers.LogSuccess("DeletePaymentHandler", "payment deleted", map[string]any{"payment_id": paymentID})
}
