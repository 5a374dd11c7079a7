package handler

import (
	"context"
	"net/http"
	"strconv"

	"auction-web/internal/listing"
	"auction-web/internal/models"
	"auction-web/services/pages/helpers"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=list_handler.go -destination=mock_list_handler.go -package=handler

// Headers describing a rendered list fragment
const (
	HeaderListState = "X-List-State"
	HeaderListCount = "X-List-Count"
)

type FavoritesServiceInterface interface {
	Load(ctx context.Context) listing.Result[models.Favorite]
	Remove(ctx context.Context, favoriteID int64) (listing.Removal, error)
}

type AlertsServiceInterface interface {
	Load(ctx context.Context) listing.Result[models.PriceAlert]
}

type ListHandler struct {
	favorites FavoritesServiceInterface
	alerts    AlertsServiceInterface
}

func NewListHandler(favorites FavoritesServiceInterface, alerts AlertsServiceInterface) *ListHandler {
	return &ListHandler{favorites: favorites, alerts: alerts}
}

// FavoritesHandler handles GET /pages/favorites. Every list state is a
// rendered fragment, so the status is always 200.
func (h *ListHandler) FavoritesHandler(c *gin.Context) {
	res := h.favorites.Load(c.Request.Context())

	html, err := listing.RenderFavorites(res)
	if err != nil {
		helpers.RespondError(c, "FavoritesHandler", err, "즐겨찾기 목록을 표시할 수 없습니다.")
		return
	}

	writeList(c, string(res.State), len(res.Items), html)
}

// RemoveFavoriteHandler handles POST /pages/favorites/:favorite_id/delete
func (h *ListHandler) RemoveFavoriteHandler(c *gin.Context) {
	favoriteID := paramInt(c, "favorite_id")

	removal, err := h.favorites.Remove(c.Request.Context(), favoriteID)
	if err != nil {
		helpers.RespondError(c, "RemoveFavoriteHandler", err, removal.Message)
		return
	}

	html, err := listing.RenderFavorites(removal.List)
	if err != nil {
		helpers.RespondError(c, "RemoveFavoriteHandler", err, "즐겨찾기 목록을 표시할 수 없습니다.")
		return
	}

	resp := helpers.RemoveFavoriteResponse{
		Removed: removal.Removed,
		Count:   removal.List.Count(),
		HTML:    html,
	}
	utils.JSONResponse(c, http.StatusOK, resp, removal.Message)
	helpers.LogSuccess("RemoveFavoriteHandler", "favorite removed", map[string]any{"favorite_id": favoriteID})
}

// AlertsHandler handles GET /pages/alerts
func (h *ListHandler) AlertsHandler(c *gin.Context) {
	res := h.alerts.Load(c.Request.Context())

	html, err := listing.RenderAlerts(res)
	if err != nil {
		helpers.RespondError(c, "AlertsHandler", err, "가격 알림 목록을 표시할 수 없습니다.")
		return
	}

	writeList(c, string(res.State), len(res.Items), html)
}

func writeList(c *gin.Context, state string, n int, html string) {
	c.Header(HeaderListState, state)
	c.Header(HeaderListCount, strconv.Itoa(n))
	utils.HTMLFragment(c, http.StatusOK, html)
}
