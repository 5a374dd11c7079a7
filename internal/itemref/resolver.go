// Package itemref resolves which item identifier a page submits.
package itemref

import (
	"net/url"
	"strconv"
	"strings"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

// Query parameter and hidden field names
const (
	KeyAuctionNo = "auctionNo"
	KeyItemID    = "itemId"
	KeyCltrNo    = "cltrNo"
)

// Fields are the raw hidden-input values embedded in the page
type Fields struct {
	AuctionNo string `form:"hiddenAuctionNo"`
	ItemID    string `form:"hiddenItemId"`
	CltrNo    string `form:"hiddenCltrNo"`
}

// Resolve picks the item reference: hidden field first, then the query
// parameter of the same name. It returns ErrMissingItemReference when none of
// the three identifiers resolve.
func Resolve(fields Fields, query url.Values) (models.ItemRef, error) {
	var ref models.ItemRef

	ref.AuctionNo = parseInt(fields.AuctionNo)
	ref.ItemID = parseInt(fields.ItemID)
	ref.CltrNo = parseText(fields.CltrNo)

	if ref.AuctionNo == nil {
		ref.AuctionNo = parseInt(query.Get(KeyAuctionNo))
	}
	if ref.ItemID == nil {
		ref.ItemID = parseInt(query.Get(KeyItemID))
	}
	if ref.CltrNo == nil {
		ref.CltrNo = parseText(query.Get(KeyCltrNo))
	}

	if ref.IsZero() {
		utils.Warn("itemref: no item identifier resolved", map[string]any{
			"hidden_auction_no": fields.AuctionNo,
			"hidden_item_id":    fields.ItemID,
			"hidden_cltr_no":    fields.CltrNo,
		})
		return models.ItemRef{}, pageerrors.ErrMissingItemReference
	}
	return ref, nil
}

// Apply writes the resolved identifiers into v, leaving unresolved keys out
func Apply(ref models.ItemRef, v url.Values) {
	if ref.AuctionNo != nil {
		v.Set(KeyAuctionNo, formatInt(*ref.AuctionNo))
	}
	if ref.ItemID != nil {
		v.Set(KeyItemID, formatInt(*ref.ItemID))
	}
	if ref.CltrNo != nil {
		v.Set(KeyCltrNo, *ref.CltrNo)
	}
}

// LogFields returns the reference as log fields
func LogFields(ref models.ItemRef) map[string]any {
	out := map[string]any{}
	if ref.AuctionNo != nil {
		out["auction_no"] = *ref.AuctionNo
	}
	if ref.ItemID != nil {
		out["item_id"] = *ref.ItemID
	}
	if ref.CltrNo != nil {
		out["cltr_no"] = *ref.CltrNo
	}
	return out
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// parseInt accepts a trimmed, non-empty, non-zero integer
func parseInt(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

func parseText(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	return &raw
}
