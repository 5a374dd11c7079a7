// Package bidform drives the bid form: deposit preview, submit gate and the
// submission that hands off to the confirmation page.
package bidform

import (
	"context"
	"errors"
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

//go:generate mockgen -source=flow.go -destination=mock_flow.go -package=bidform

// SubmitAPI is the backend call the flow needs
type SubmitAPI interface {
	SubmitBid(ctx context.Context, req models.SubmitBidRequest) (models.SubmitBidResult, error)
}

// Phase is where a submission ended
type Phase string

const (
	PhaseEditing     Phase = "editing"
	PhaseValidating  Phase = "validating"
	PhaseSubmitting  Phase = "submitting"
	PhaseRedirecting Phase = "redirecting"
	PhaseFailed      Phase = "failed"
	PhaseConflict    Phase = "conflict"
)

// ConflictMarker is the backend message for a bid that already exists
const ConflictMarker = "이미 입찰서가 작성되었습니다"

const (
	msgSubmitError   = "입찰서 제출 중 오류가 발생했습니다."
	msgUnknownReason = "알 수 없는 오류"
	msgConflict      = "이미 입찰서가 작성되었습니다.\n기존 입찰서를 보시겠습니까?"
)

// Outcome tells the page what to do next. URL is the redirect target for
// PhaseRedirecting and the existing bid for PhaseConflict. A failed outcome
// names the phase it stopped in.
type Outcome struct {
	Phase   Phase
	URL     string
	Message string
}

// Flow submits bid forms
type Flow struct {
	api SubmitAPI
}

// NewFlow creates a Flow
func NewFlow(api SubmitAPI) *Flow {
	return &Flow{api: api}
}

// Submit validates the form, resolves the item and posts the bid. At most
// one submission per PageState runs at a time.
//
// A conflict is not an error: the outcome offers the existing bid instead.
func (f *Flow) Submit(ctx context.Context, st *PageState, fields itemref.Fields, query url.Values, itemName string) (Outcome, error) {
	draft, err := st.begin()
	switch {
	case errors.Is(err, pageerrors.ErrAlreadySubmitted):
		return stopped(PhaseRedirecting, err)
	case errors.Is(err, pageerrors.ErrSubmissionInFlight):
		return stopped(PhaseSubmitting, err)
	case err != nil:
		return stopped(PhaseValidating, err)
	}
	redirected := false
	defer func() { st.finish(redirected) }()

	ref, err := itemref.Resolve(fields, query)
	if err != nil {
		return stopped(PhaseValidating, err)
	}

	req := models.SubmitBidRequest{
		Amount:   draft.DepositAmount,
		ItemName: strings.TrimSpace(itemName),
		BidDraft: draft,
		ItemRef:  ref,
	}

	logFields := itemref.LogFields(ref)
	logFields["bid_amount"] = draft.BidAmount
	logFields["deposit_amount"] = draft.DepositAmount

	res, err := f.api.SubmitBid(ctx, req)

	if existing, ok := conflict(res); ok {
		logFields["existing_payment_id"] = string(res.ExistingPaymentID)
		utils.Info("bidform: bid already exists", logFields)
		return Outcome{
			Phase:   PhaseConflict,
			URL:     backend.PathPaymentDetail + existing,
			Message: msgConflict,
		}, nil
	}

	if err != nil {
		logFields["error"] = err.Error()
		utils.Error("bidform: submit bid failed", logFields)
		return failed(fmt.Errorf("bidform: submit bid: %w", err))
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgUnknownReason
		}
		logFields["message"] = msg
		utils.Warn("bidform: submit bid rejected", logFields)
		return failed(pageerrors.NewBusinessError(http.StatusOK, msg))
	}

	if res.PaymentID.Empty() {
		utils.Error("bidform: success without paymentId", logFields)
		return failed(pageerrors.ErrMissingPaymentID)
	}

	redirected = true
	target := ConfirmationURL(string(res.PaymentID), draft)
	logFields["payment_id"] = string(res.PaymentID)
	utils.Info("bidform: bid submitted", logFields)
	return Outcome{Phase: PhaseRedirecting, URL: target}, nil
}

// ConfirmationURL encodes the payment id and the full draft for the
// confirmation page.
func ConfirmationURL(paymentID string, d models.BidDraft) string {
	var q utils.QueryBuilder
	q.Add("paymentId", paymentID).
		Add("bidAmount", strconv.FormatInt(d.BidAmount, 10)).
		Add("depositAmount", strconv.FormatInt(d.DepositAmount, 10)).
		Add("bidMethod", string(d.BidMethod)).
		Add("paymentMethod", string(d.PaymentMethod)).
		Add("refundBank", d.RefundBank).
		Add("refundAccountNumber", d.RefundAccountNumber).
		Add("refundAccountHolder", d.RefundAccountHolder)
	return q.URL(backend.PathBidSubmitted)
}

func conflict(res models.SubmitBidResult) (string, bool) {
	if res.Success || res.ExistingPaymentID.Empty() {
		return "", false
	}
	if !strings.Contains(res.Message, ConflictMarker) {
		return "", false
	}
	return url.PathEscape(string(res.ExistingPaymentID)), true
}

func failed(err error) (Outcome, error) {
	return stopped(PhaseFailed, err)
}

// stopped reports a submission that ended at phase without reaching the
// network, or after it for PhaseFailed.
func stopped(phase Phase, err error) (Outcome, error) {
	return Outcome{Phase: phase, Message: Message(err)}, err
}

// Message is the text shown for a failed submission: the server message
// verbatim when there is one, else the client-side or transport text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if be, ok := pageerrors.AsBackend(err); ok && be.Message != "" {
		return be.Message
	}
	return pageerrors.UserMessage(err, msgSubmitError)
}
