package helpers

import (
	"auction-web/internal/itemref"
	"auction-web/internal/models"
)

// Request/Response DTOs

// OpenBidFormRequest opens a bid form for one rendered page
type OpenBidFormRequest struct {
	MinBidAmount string `form:"minBidAmount" json:"minBidAmount"`
}

// BidDraftRequest is the whole bid form, sent on every change
type BidDraftRequest struct {
	BidAmount           string `form:"bidAmount"`
	BidMethod           string `form:"bidMethod" binding:"omitempty,oneof=self agent"`
	PaymentMethod       string `form:"paymentMethod" binding:"omitempty,oneof=cash card"`
	RefundBank          string `form:"refundBank"`
	RefundAccountNumber string `form:"refundAccountNumber"`
	RefundAccountHolder string `form:"refundAccountHolder"`
}

// SubmitBidRequest carries the hidden item fields and the item name
type SubmitBidRequest struct {
	itemref.Fields
	ItemName string `form:"itemName"`
}

type BidFormResponse struct {
	FormID        string `json:"formId"`
	MinBidAmount  int64  `json:"minBidAmount"`
	BidMethod     string `json:"bidMethod"`
	PaymentMethod string `json:"paymentMethod"`
}

type BidPreviewResponse struct {
	BidAmountText string `json:"bidAmountText"`
	DepositAmount int64  `json:"depositAmount"`
	DepositText   string `json:"depositText"`
	SubmitEnabled bool   `json:"submitEnabled"`
	Phase         string `json:"phase"`
}

// NavigationResponse tells the page where to go next. Confirm is set when
// the page should ask before navigating.
type NavigationResponse struct {
	Phase    string `json:"phase,omitempty"`
	Redirect string `json:"redirect"`
	Confirm  string `json:"confirm,omitempty"`
}

// PrepareCheckoutRequest is the checkout page data. SDKLoaded reports
// whether the browser could load the payment SDK.
type PrepareCheckoutRequest struct {
	itemref.Fields
	Amount     int64  `form:"amount"`
	ItemName   string `form:"itemName"`
	BuyerName  string `form:"buyerName"`
	BuyerEmail string `form:"buyerEmail"`
	BuyerPhone string `form:"buyerPhone"`
	SDKLoaded  bool   `form:"sdkLoaded"`
}

// CheckoutCallbackRequest is the SDK callback relayed by the browser
type CheckoutCallbackRequest struct {
	MerchantUID string             `json:"merchantUid" binding:"required"`
	Response    models.SDKResponse `json:"response"`
}

type RemoveFavoriteResponse struct {
	Removed bool   `json:"removed"`
	Count   string `json:"count"`
	HTML    string `json:"html"`
}

type ReplyRequest struct {
	LoginID string `form:"loginId"`
	Content string `form:"content"`
}

type FindIDResponse struct {
	ID string `json:"id"`
}

type IDCheckRequest struct {
	ID string `form:"id"`
}

type UnlockRequest struct {
	ID   string `form:"id" binding:"required"`
	Pass string `form:"pass"`
}

type ProfileResponse struct {
	Name    string `json:"name"`
	Mobile1 string `json:"mobile1"`
	Mobile2 string `json:"mobile2"`
}
