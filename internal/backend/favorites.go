package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"auction-web/internal/models"
)

// Favorite endpoints
const (
	PathFavorites   = "/api/favorites"
	PathPriceAlerts = "/api/favorites/alerts/api"
)

// Favorites fetches the favorites list undecoded; the caller classifies the
// shape. Only a network failure is an error.
func (c *Client) Favorites(ctx context.Context, timeout time.Duration) (RawResponse, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	return c.send(ctx, http.MethodGet, PathFavorites, "", nil)
}

// PriceAlerts fetches the price alert list undecoded
func (c *Client) PriceAlerts(ctx context.Context, timeout time.Duration) (RawResponse, error) {
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	return c.send(ctx, http.MethodGet, PathPriceAlerts, "", nil)
}

// DeleteFavorite removes one favorite
func (c *Client) DeleteFavorite(ctx context.Context, favoriteID int64) (models.Result, error) {
	var res models.Result
	err := c.call(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", PathFavorites, favoriteID), "", nil, &res)
	return res, err
}
