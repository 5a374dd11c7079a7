package server

import (
	"context"
	"time"

	"auction-web/internal/account"
	"auction-web/internal/backend"
	"auction-web/internal/bidform"
	"auction-web/internal/checkout"
	"auction-web/internal/config"
	"auction-web/internal/listing"
	"auction-web/internal/replies"
	"auction-web/internal/repository"
	"auction-web/services/pages/handler"
	"auction-web/utils"
)

// NewHandlers wires every page flow to the backend client and the session
// store.
func NewHandlers(cfg *config.Config, client *backend.Client, store repository.SessionStore) Handlers {
	// the browser owns the payment SDK, so the flow is built without one
	checkoutFlow := checkout.NewFlow(client, nil, checkout.Config{
		PG:        cfg.Payment.PG,
		PayMethod: cfg.Payment.PayMethod,
	})

	return Handlers{
		BidForm:  handler.NewBidFormHandler(store, bidform.NewFlow(client)),
		Checkout: handler.NewCheckoutHandler(checkoutFlow, checkout.NewPayments(client)),
		Lists: handler.NewListHandler(
			listing.NewFavorites(client, cfg.GetListTimeout()),
			listing.NewAlerts(client, cfg.GetListTimeout()),
		),
		Replies: handler.NewReplyHandler(replies.NewFlow(client)),
		Account: handler.NewAccountHandler(
			store,
			account.NewRecovery(client),
			account.NewJoin(client),
			account.NewModify(client),
		),
		Store: store,
	}
}

// RunSessionSweeper drops page sessions idle for longer than ttl, checking
// every interval until ctx is done.
func RunSessionSweeper(ctx context.Context, store repository.SessionStore, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := store.Sweep(now.Add(-ttl)); n > 0 {
				utils.Info("server: page sessions swept", map[string]any{"count": n})
			}
		}
	}
}
