package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// BidMethod is how the bidder takes part in the auction
type BidMethod string

const (
	BidMethodSelf  BidMethod = "self"
	BidMethodAgent BidMethod = "agent"
)

// PaymentMethod is how the deposit is paid
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// ItemRef identifies the auctioned item. Unresolved fields stay nil and are
// omitted from outgoing requests.
type ItemRef struct {
	AuctionNo *int64  `json:"auctionNo,omitempty"`
	ItemID    *int64  `json:"itemId,omitempty"`
	CltrNo    *string `json:"cltrNo,omitempty"`
}

// IsZero reports whether no identifier resolved
func (r ItemRef) IsZero() bool {
	return r.AuctionNo == nil && r.ItemID == nil && r.CltrNo == nil
}

// BidDraft is the bid form content at submission time
type BidDraft struct {
	BidAmount           int64         `json:"bidAmount"`
	DepositAmount       int64         `json:"depositAmount"`
	BidMethod           BidMethod     `json:"bidMethod"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	RefundBank          string        `json:"refundBank"`
	RefundAccountNumber string        `json:"refundAccountNumber"`
	RefundAccountHolder string        `json:"refundAccountHolder"`
}

// SubmitBidRequest is the body of POST /payment/submit-bid
type SubmitBidRequest struct {
	Amount   int64  `json:"amount"`
	ItemName string `json:"itemName"`
	BidDraft
	ItemRef
}

// FlexID is an identifier the backend sends either as a JSON number or string.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex id: %w", err)
	}
	*id = FlexID(n.String())
	return nil
}

// Empty reports a missing id; 0 counts as missing.
func (id FlexID) Empty() bool {
	return id == "" || id == "0"
}

// Int64 parses the id as a number
func (id FlexID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

// SubmitBidResult is the response of POST /payment/submit-bid
type SubmitBidResult struct {
	Success           bool   `json:"success"`
	PaymentID         FlexID `json:"paymentId"`
	Message           string `json:"message"`
	ExistingPaymentID FlexID `json:"existingPaymentId"`
}

// PrepareRequest is the body of POST /payment/prepare
type PrepareRequest struct {
	Amount   int64  `json:"amount"`
	ItemName string `json:"itemName"`
	ItemRef
}

// PrepareResult is the response of POST /payment/prepare
type PrepareResult struct {
	Success     bool   `json:"success"`
	MerchantUID string `json:"merchantUid"`
	Message     string `json:"message"`
}

// CompleteRequest is the body of POST /payment/complete
type CompleteRequest struct {
	ImpUID      string `json:"imp_uid"`
	MerchantUID string `json:"merchant_uid"`
}

// Result is the common {success, message} envelope
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SDKRequest is handed to the payment SDK
type SDKRequest struct {
	PG          string `json:"pg"`
	PayMethod   string `json:"pay_method"`
	MerchantUID string `json:"merchant_uid"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	BuyerName   string `json:"buyer_name"`
	BuyerEmail  string `json:"buyer_email"`
	BuyerTel    string `json:"buyer_tel"`
}

// SDKResponse is what the payment SDK calls back with
type SDKResponse struct {
	Success     bool   `json:"success"`
	ImpUID      string `json:"imp_uid,omitempty"`
	MerchantUID string `json:"merchant_uid,omitempty"`
	ErrorMsg    string `json:"error_msg,omitempty"`
}

// Favorite is a favorited item, pre-formatted by the server
type Favorite struct {
	FavoriteID              int64  `json:"favoriteId"`
	ID                      int64  `json:"id"`
	CltrNo                  string `json:"cltrNo"`
	Address                 string `json:"address"`
	ItemName                string `json:"itemName"`
	GoodsNm                 string `json:"goodsNm"`
	FormattedDate           string `json:"formattedDate"`
	AppraisalPriceFormatted string `json:"appraisalPriceFormatted"`
	MinPriceFormatted       string `json:"minPriceFormatted"`
	PricePercent            string `json:"pricePercent"`
	UscbCnt                 int    `json:"uscbCnt"`
}

// Key returns favoriteId, falling back to id
func (f Favorite) Key() int64 {
	if f.FavoriteID != 0 {
		return f.FavoriteID
	}
	return f.ID
}

// PriceAlert is a price change notification for a favorited item
type PriceAlert struct {
	ItemPlnmNo    string `json:"itemPlnmNo"`
	PreviousPrice int64  `json:"previousPrice"`
	NewPrice      int64  `json:"newPrice"`
	AlertSent     bool   `json:"alertSent"`
	SentDate      string `json:"sentDate"`
}

// Reply is a board comment
type Reply struct {
	No             int64  `json:"no"`
	ID             string `json:"id"`
	Content        string `json:"content"`
	DisplayRegDate string `json:"displayRegDate"`
	CanEdit        bool   `json:"canEdit"`
}

// MemberResult is the {success, message, data} envelope of the member endpoints
type MemberResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Member is the profile returned by /getMemberInfo
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
