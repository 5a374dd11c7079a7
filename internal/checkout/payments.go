package checkout

import (
	"context"
	"fmt"
	"net/http"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=checkout

// DeleteAPI removes bid history records
type DeleteAPI interface {
	DeletePayment(ctx context.Context, paymentID int64) (models.Result, error)
}

const (
	msgDeleteError    = "삭제 중 오류가 발생했습니다."
	msgUnknownFailure = "알 수 없는 오류"
	msgDeletePrefix   = "삭제 중 오류가 발생했습니다: "
)

// Payments is the my-payments page
type Payments struct {
	api DeleteAPI
}

// NewPayments creates Payments
func NewPayments(api DeleteAPI) *Payments {
	return &Payments{api: api}
}

// Delete removes one bid history record with a single DELETE call
func (p *Payments) Delete(ctx context.Context, paymentID int64) error {
	if paymentID <= 0 {
		return pageerrors.ErrMissingID
	}

	res, err := p.api.DeletePayment(ctx, paymentID)
	if err != nil {
		utils.Error("checkout: delete payment failed", map[string]any{
			"payment_id": paymentID,
			"error":      err.Error(),
		})
		return fmt.Errorf("checkout: delete payment %d: %w", paymentID, err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgUnknownFailure
		}
		return pageerrors.NewBusinessError(http.StatusOK, msg)
	}

	utils.Info("checkout: payment deleted", map[string]any{"payment_id": paymentID})
	return nil
}

// DeleteMessage is the alert text for a failed delete
func DeleteMessage(err error) string {
	if be, ok := pageerrors.AsBackend(err); ok && be.Kind == pageerrors.Business {
		return msgDeletePrefix + be.Message
	}
	return pageerrors.UserMessage(err, msgDeleteError)
}
