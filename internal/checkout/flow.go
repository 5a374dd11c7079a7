// Package checkout runs the two round trip payment protocol around the
// payment SDK: prepare, pay, complete.
package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"auction-web/internal/backend"
	"auction-web/internal/itemref"
	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=flow.go -destination=mock_flow.go -package=checkout

// PaymentAPI is the backend half of the protocol
type PaymentAPI interface {
	PreparePayment(ctx context.Context, req models.PrepareRequest) (models.PrepareResult, error)
	CompletePayment(ctx context.Context, req models.CompleteRequest) (models.Result, error)
}

// PaymentSDK is the payment gateway SDK. RequestPay blocks until the SDK
// calls back; a failed payment is a response with Success false, not an
// error.
type PaymentSDK interface {
	RequestPay(ctx context.Context, req models.SDKRequest) (models.SDKResponse, error)
}

// Gateway defaults
const (
	DefaultPG        = "html5_inicis"
	DefaultPayMethod = "card"
)

const (
	msgPrepareFailed  = "결제 준비에 실패했습니다."
	msgPrepareError   = "결제 준비 중 오류가 발생했습니다."
	msgPayFailed      = "결제에 실패했습니다."
	msgVerifyFailed   = "결제 검증 실패"
	msgCompleteError  = "결제 완료 처리 중 오류가 발생했습니다."
	defaultBidMethod  = "self"
	queryDeposit      = "depositAmount"
	queryBidAmount    = "bidAmount"
	queryBidMethod    = "bidMethod"
	querySelectedBank = "selectedBank"
)

// Config selects the gateway
type Config struct {
	PG        string
	PayMethod string
}

// Page is what the checkout page embeds about the item and buyer
type Page struct {
	Amount     int64
	ItemName   string
	BuyerName  string
	BuyerEmail string
	BuyerPhone string
	Fields     itemref.Fields
}

// PayParams is one payment attempt: the page data plus the query string the
// bid confirmation page linked with.
type PayParams struct {
	Page  Page
	Query url.Values
}

// Amount is the deposit carried over from the bid form when present, else
// the page amount.
func (p PayParams) Amount() int64 {
	if raw := strings.TrimSpace(p.Query.Get(queryDeposit)); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	return p.Page.Amount
}

// Flow drives checkout. sdk may be nil when the browser owns the SDK; Pay
// then refuses to start.
type Flow struct {
	api PaymentAPI
	sdk PaymentSDK
	cfg Config
}

// NewFlow creates a Flow, filling gateway defaults
func NewFlow(api PaymentAPI, sdk PaymentSDK, cfg Config) *Flow {
	if cfg.PG == "" {
		cfg.PG = DefaultPG
	}
	if cfg.PayMethod == "" {
		cfg.PayMethod = DefaultPayMethod
	}
	return &Flow{api: api, sdk: sdk, cfg: cfg}
}

// Prepare asks the backend for a merchant uid and returns the SDK request to
// pay with. Nothing is returned on failure, so the SDK is never invoked.
func (f *Flow) Prepare(ctx context.Context, p PayParams) (models.SDKRequest, error) {
	ref, err := itemref.Resolve(p.Page.Fields, p.Query)
	if err != nil {
		return models.SDKRequest{}, err
	}

	amount := p.Amount()
	logFields := itemref.LogFields(ref)
	logFields["amount"] = amount

	res, err := f.api.PreparePayment(ctx, models.PrepareRequest{
		Amount:   amount,
		ItemName: p.Page.ItemName,
		ItemRef:  ref,
	})
	if err != nil {
		logFields["error"] = err.Error()
		utils.Error("checkout: prepare failed", logFields)
		return models.SDKRequest{}, fmt.Errorf("checkout: prepare: %w", err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgPrepareFailed
		}
		logFields["message"] = msg
		utils.Warn("checkout: prepare rejected", logFields)
		return models.SDKRequest{}, pageerrors.NewBusinessError(http.StatusOK, msg)
	}
	if res.MerchantUID == "" {
		utils.Error("checkout: prepare without merchantUid", logFields)
		return models.SDKRequest{}, pageerrors.ErrMissingMerchantUID
	}

	logFields["merchant_uid"] = res.MerchantUID
	utils.Info("checkout: payment prepared", logFields)

	return models.SDKRequest{
		PG:          f.cfg.PG,
		PayMethod:   f.cfg.PayMethod,
		MerchantUID: res.MerchantUID,
		Name:        p.Page.ItemName,
		Amount:      amount,
		BuyerName:   p.Page.BuyerName,
		BuyerEmail:  p.Page.BuyerEmail,
		BuyerTel:    p.Page.BuyerPhone,
	}, nil
}

// Complete turns the SDK callback into the page to navigate to. An SDK
// failure goes straight to the fail page without asking the backend.
func (f *Flow) Complete(ctx context.Context, query url.Values, merchantUID string, rsp models.SDKResponse) string {
	if !rsp.Success {
		msg := rsp.ErrorMsg
		if msg == "" {
			msg = msgPayFailed
		}
		utils.Warn("checkout: sdk reported failure", map[string]any{
			"merchant_uid": merchantUID,
			"message":      msg,
		})
		return FailURL(msg)
	}

	res, err := f.api.CompletePayment(ctx, models.CompleteRequest{
		ImpUID:      rsp.ImpUID,
		MerchantUID: rsp.MerchantUID,
	})
	if err != nil {
		msg := msgCompleteError
		if be, ok := pageerrors.AsBackend(err); ok && be.Message != "" {
			msg = be.Message
		}
		utils.Error("checkout: complete failed", map[string]any{
			"merchant_uid": merchantUID,
			"imp_uid":      rsp.ImpUID,
			"error":        err.Error(),
		})
		return FailURL(msg)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgVerifyFailed
		}
		utils.Warn("checkout: verification rejected", map[string]any{
			"merchant_uid": merchantUID,
			"message":      msg,
		})
		return FailURL(msg)
	}

	utils.Info("checkout: payment completed", map[string]any{
		"merchant_uid": merchantUID,
		"imp_uid":      rsp.ImpUID,
	})
	return SuccessURL(merchantUID, query)
}

// Pay runs prepare, the SDK and complete in order. The returned URL is empty
// when the flow aborted before the SDK.
func (f *Flow) Pay(ctx context.Context, p PayParams) (string, error) {
	if f.sdk == nil {
		utils.Error("checkout: payment sdk unavailable", nil)
		return "", pageerrors.ErrPaymentSDKUnavailable
	}

	req, err := f.Prepare(ctx, p)
	if err != nil {
		return "", err
	}

	rsp, err := f.sdk.RequestPay(ctx, req)
	if err != nil {
		return "", fmt.Errorf("checkout: request pay: %w", err)
	}

	return f.Complete(ctx, p.Query, req.MerchantUID, rsp), nil
}

// PrepareMessage is the alert text for a failed prepare
func PrepareMessage(err error) string {
	if be, ok := pageerrors.AsBackend(err); ok && be.Message != "" {
		return be.Message
	}
	return pageerrors.UserMessage(err, msgPrepareError)
}

// SuccessURL carries the bid context from the checkout query to the success
// page.
func SuccessURL(merchantUID string, query url.Values) string {
	bidMethod := query.Get(queryBidMethod)
	if bidMethod == "" {
		bidMethod = defaultBidMethod
	}

	var q utils.QueryBuilder
	q.Add("merchantUid", merchantUID).
		AddIf(queryBidAmount, query.Get(queryBidAmount)).
		AddIf(queryDeposit, query.Get(queryDeposit)).
		Add(queryBidMethod, bidMethod).
		AddIf(querySelectedBank, query.Get(querySelectedBank))
	return q.URL(backend.PathPaymentSuccess)
}

// FailURL is the fail page showing message
func FailURL(message string) string {
	var q utils.QueryBuilder
	q.Add("message", message)
	return q.URL(backend.PathPaymentFail)
}
