package bidform

import (
	"fmt"
	"sync"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"

	"golang.org/x/sync/semaphore"
)

// PageState is the bid form's state for one page session. Handlers receive
// it explicitly; nothing is kept in package globals.
type PageState struct {
	mu sync.Mutex

	minBidAmount  int64
	bidMethod     models.BidMethod
	paymentMethod models.PaymentMethod

	bidAmountRaw string
	bidAmount    int64
	hasBidAmount bool
	deposit      int64

	refundBank          string
	refundAccountNumber string
	refundAccountHolder string

	// at most one submission in flight; kept acquired after a redirect
	inFlight   *semaphore.Weighted
	submitting bool
	submitted  bool
}

// NewPageState starts a form with the server-declared minimum bid, given as
// it appears on the page ("500,000원" is accepted).
func NewPageState(minBidAmount string) *PageState {
	minBid, _ := ParseAmount(minBidAmount)
	return &PageState{
		minBidAmount:  minBid,
		bidMethod:     models.BidMethodSelf,
		paymentMethod: models.PaymentMethodCash,
		inFlight:      semaphore.NewWeighted(1),
	}
}

// MinBidAmount returns the client-side gating value
func (s *PageState) MinBidAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minBidAmount
}

// DraftInput is one edit of the whole form as the page posts it. Empty
// methods keep the current selection.
type DraftInput struct {
	BidAmount           string
	BidMethod           models.BidMethod
	PaymentMethod       models.PaymentMethod
	RefundBank          string
	RefundAccountNumber string
	RefundAccountHolder string
}

// ApplyDraft applies in as a single edit. Nothing changes when a method is
// unknown or a submission is running or done.
func (s *PageState) ApplyDraft(in DraftInput) error {
	if in.BidMethod != "" {
		if err := checkBidMethod(in.BidMethod); err != nil {
			return err
		}
	}
	if in.PaymentMethod != "" {
		if err := checkPaymentMethod(in.PaymentMethod); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}

	if in.BidMethod != "" {
		s.bidMethod = in.BidMethod
	}
	if in.PaymentMethod != "" {
		s.paymentMethod = in.PaymentMethod
	}
	s.refundBank = in.RefundBank
	s.refundAccountNumber = SanitizeAccountNumber(in.RefundAccountNumber)
	s.refundAccountHolder = in.RefundAccountHolder
	s.setBidAmountLocked(in.BidAmount)
	return nil
}

func (s *PageState) editableLocked() error {
	switch {
	case s.submitted:
		return pageerrors.ErrAlreadySubmitted
	case s.submitting:
		return pageerrors.ErrSubmissionInFlight
	}
	return nil
}

func checkBidMethod(m models.BidMethod) error {
	switch m {
	case models.BidMethodSelf, models.BidMethodAgent:
		return nil
	}
	return fmt.Errorf("bidform: bid method %q: %w", m, pageerrors.ErrInvalidOption)
}

func checkPaymentMethod(m models.PaymentMethod) error {
	switch m {
	case models.PaymentMethodCash, models.PaymentMethodCard:
		return nil
	}
	return fmt.Errorf("bidform: payment method %q: %w", m, pageerrors.ErrInvalidOption)
}

// SelectBidMethod changes the bid method
func (s *PageState) SelectBidMethod(m models.BidMethod) error {
	if err := checkBidMethod(m); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bidMethod = m
	return nil
}

// SelectPaymentMethod changes the payment method
func (s *PageState) SelectPaymentMethod(m models.PaymentMethod) error {
	if err := checkPaymentMethod(m); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = m
	return nil
}

// SetBidAmount records the raw input and recomputes the deposit. An input
// without digits resets the deposit to zero.
func (s *PageState) SetBidAmount(raw string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setBidAmountLocked(raw)
	return s.deposit
}

func (s *PageState) setBidAmountLocked(raw string) {
	s.bidAmountRaw = raw
	s.bidAmount, s.hasBidAmount = ParseAmount(raw)
	s.deposit = Deposit(s.bidAmount)
}

// SetRefundAccount records the refund account; the number keeps digits and dashes
func (s *PageState) SetRefundAccount(bank, number, holder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refundBank = bank
	s.refundAccountNumber = SanitizeAccountNumber(number)
	s.refundAccountHolder = holder
}

// Deposit returns the deposit for the current bid amount
func (s *PageState) Deposit() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deposit
}

// DepositText renders the deposit preview, "0원" when no amount is entered
func (s *PageState) DepositText() string {
	return FormatWon(s.Deposit())
}

// BidAmountText renders the bid amount input with digit grouping
func (s *PageState) BidAmountText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasBidAmount {
		return ""
	}
	return FormatAmount(s.bidAmount)
}

// SubmitEnabled is the submit gate: the amount parses and is at least the
// minimum, all refund fields are set, and no submission is running or done.
func (s *PageState) SubmitEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted || s.submitting {
		return false
	}
	return s.validateLocked() == nil
}

// Validate re-checks the gate and names the failing part
func (s *PageState) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *PageState) validateLocked() error {
	if !s.hasBidAmount || s.bidAmount < s.minBidAmount {
		return pageerrors.ErrBidTooLow
	}
	if s.refundBank == "" || s.refundAccountNumber == "" || s.refundAccountHolder == "" {
		return pageerrors.ErrMissingRefundAccount
	}
	return nil
}

// Draft snapshots the form. The deposit is derived from the amount at
// snapshot time.
func (s *PageState) Draft() models.BidDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}

func (s *PageState) draftLocked() models.BidDraft {
	return models.BidDraft{
		BidAmount:           s.bidAmount,
		DepositAmount:       Deposit(s.bidAmount),
		BidMethod:           s.bidMethod,
		PaymentMethod:       s.paymentMethod,
		RefundBank:          s.refundBank,
		RefundAccountNumber: s.refundAccountNumber,
		RefundAccountHolder: s.refundAccountHolder,
	}
}

// Phase reports where the form stands between submissions
func (s *PageState) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.submitted:
		return PhaseRedirecting
	case s.submitting:
		return PhaseSubmitting
	default:
		return PhaseEditing
	}
}

// Submitted reports whether a submission already redirected
func (s *PageState) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// begin checks the gate, takes the in-flight permit and snapshots the draft
// under one lock, so the posted draft is the one that passed the gate.
func (s *PageState) begin() (models.BidDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitted {
		return models.BidDraft{}, pageerrors.ErrAlreadySubmitted
	}
	if err := s.validateLocked(); err != nil {
		return models.BidDraft{}, err
	}
	if !s.inFlight.TryAcquire(1) {
		return models.BidDraft{}, pageerrors.ErrSubmissionInFlight
	}
	s.submitting = true
	return s.draftLocked(), nil
}

// finish ends a submission. A redirect keeps the permit so the form stays
// disabled; any other end re-enables it.
func (s *PageState) finish(redirected bool) {
	s.mu.Lock()
	s.submitting = false
	s.submitted = redirected
	s.mu.Unlock()
	if !redirected {
		s.inFlight.Release(1)
	}
}
