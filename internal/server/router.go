package server

import (
	"net/http"

	"auction-web/internal/repository"
	"auction-web/services/pages/handler"

	"github.com/gin-gonic/gin"
)

// Handlers are the page handlers the router mounts
type Handlers struct {
	BidForm  *handler.BidFormHandler
	Checkout *handler.CheckoutHandler
	Lists    *handler.ListHandler
	Replies  *handler.ReplyHandler
	Account  *handler.AccountHandler

	// Store backs the page sessions the middleware resolves
	Store repository.SessionStore
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // request ids, forwarded to the backend
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	pages := router.Group("/pages", PageSessionMiddleware, ForwardCookiesMiddleware(h.Store))

	bidForm := pages.Group("/bid-form")
	{
		bidForm.POST("", h.BidForm.OpenHandler)
		bidForm.POST("/:form_id/draft", h.BidForm.DraftHandler)
		bidForm.POST("/:form_id/submit", h.BidForm.SubmitHandler)
	}

	checkout := pages.Group("/checkout")
	{
		checkout.POST("/prepare", h.Checkout.PrepareHandler)
		checkout.POST("/callback", h.Checkout.CallbackHandler)
	}

	payments := pages.Group("/payments")
	{
		payments.GET("/checkout-link", h.Checkout.CheckoutLinkHandler)
		payments.POST("/:payment_id/delete", h.Checkout.DeletePaymentHandler)
	}

	favorites := pages.Group("/favorites")
	{
		favorites.GET("", h.Lists.FavoritesHandler)
		favorites.POST("/:favorite_id/delete", h.Lists.RemoveFavoriteHandler)
	}

	pages.GET("/alerts", h.Lists.AlertsHandler)

	boards := pages.Group("/boards/:board_no/replies")
	{
		boards.POST("", h.Replies.InsertHandler)
		boards.POST("/:reply_no/update", h.Replies.UpdateHandler)
		boards.POST("/:reply_no/delete", h.Replies.DeleteHandler)
	}

	pages.POST("/find-id", h.Account.FindIDHandler)

	findPassword := pages.Group("/find-password")
	{
		findPassword.POST("/verify", h.Account.VerifyHandler)
		findPassword.POST("/reset", h.Account.ResetHandler)
	}

	join := pages.Group("/join")
	{
		join.POST("/id-check", h.Account.IDCheckHandler)
		join.POST("/validate", h.Account.JoinValidateHandler)
	}

	pages.POST("/modify/unlock", h.Account.UnlockHandler)

	return router
}
