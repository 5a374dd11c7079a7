package itemref

import (
	"strings"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

const checkoutPath = "/payment/checkout"

// CheckoutPath builds the checkout link for a bid history row. A payment id
// wins; otherwise the first resolved identifier of auctionNo, itemId, cltrNo
// is used.
func CheckoutPath(paymentID string, ref models.ItemRef) (string, error) {
	var q utils.QueryBuilder

	if id := strings.TrimSpace(paymentID); id != "" && id != "null" {
		return q.Add("paymentId", id).URL(checkoutPath), nil
	}

	switch {
	case ref.AuctionNo != nil:
		q.Add(KeyAuctionNo, formatInt(*ref.AuctionNo))
	case ref.ItemID != nil:
		q.Add(KeyItemID, formatInt(*ref.ItemID))
	case ref.CltrNo != nil:
		q.Add(KeyCltrNo, *ref.CltrNo)
	default:
		return "", pageerrors.ErrMissingItemReference
	}
	return q.URL(checkoutPath), nil
}
