package backend

import (
	"context"
	"fmt"
	"net/http"

	"auction-web/internal/models"
)

// Payment endpoints
const (
	PathSubmitBid       = "/payment/submit-bid"
	PathPrepare         = "/payment/prepare"
	PathComplete        = "/payment/complete"
	PathDeletePayment   = "/payment/delete/"
	PathBidSubmitted    = "/payment/bid-submitted"
	PathPaymentSuccess  = "/payment/success"
	PathPaymentFail     = "/payment/fail"
	PathPaymentDetail   = "/payment/detail/"
	PathPaymentCheckout = "/payment/checkout"
)

// SubmitBid posts a bid draft. On a non-2xx answer the decoded body is
// returned alongside the error.
func (c *Client) SubmitBid(ctx context.Context, req models.SubmitBidRequest) (models.SubmitBidResult, error) {
	var res models.SubmitBidResult
	err := c.postJSON(ctx, PathSubmitBid, req, &res)
	return res, err
}

// PreparePayment asks the backend for a merchant uid
func (c *Client) PreparePayment(ctx context.Context, req models.PrepareRequest) (models.PrepareResult, error) {
	var res models.PrepareResult
	err := c.postJSON(ctx, PathPrepare, req, &res)
	return res, err
}

// CompletePayment hands the SDK transaction ids to the backend for verification
func (c *Client) CompletePayment(ctx context.Context, req models.CompleteRequest) (models.Result, error) {
	var res models.Result
	err := c.postJSON(ctx, PathComplete, req, &res)
	return res, err
}

// DeletePayment removes a bid history record
func (c *Client) DeletePayment(ctx context.Context, paymentID int64) (models.Result, error) {
	var res models.Result
	path := fmt.Sprintf("%s%d", PathDeletePayment, paymentID)
	err := c.call(ctx, http.MethodDelete, path, "", nil, &res)
	return res, err
}
