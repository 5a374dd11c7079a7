package listing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"auction-web/internal/backend"
	"auction-web/internal/models"
	"auction-web/internal/pageerrors"
	"auction-web/utils"
)

//go:generate mockgen -source=favorites.go -destination=mock_favorites.go -package=listing

// ListTimeout caps the list fetches
const ListTimeout = 15 * time.Second

// Collection keys of the list envelopes
const (
	KeyFavorites = "favorites"
	KeyAlerts    = "alerts"
)

var (
	favoritesTexts = Texts{
		Rejected:  "즐겨찾기를 불러올 수 없습니다.",
		LoadError: "즐겨찾기를 불러오는 중 오류가 발생했습니다.",
	}
	alertsTexts = Texts{
		Rejected:  "가격 알림을 불러올 수 없습니다.",
		LoadError: "가격 알림을 불러오는 중 오류가 발생했습니다.",
	}
)

const (
	msgRemoved       = "즐겨찾기에서 삭제되었습니다."
	msgRemoveError   = "삭제 중 오류가 발생했습니다."
	msgRemovePrefix  = "삭제 중 오류가 발생했습니다: "
	msgUnknownReason = "알 수 없는 오류"
	msgFavoriteGone  = "즐겨찾기를 찾을 수 없습니다."
)

// ListAPI fetches the raw list envelopes
type ListAPI interface {
	Favorites(ctx context.Context, timeout time.Duration) (backend.RawResponse, error)
	PriceAlerts(ctx context.Context, timeout time.Duration) (backend.RawResponse, error)
	DeleteFavorite(ctx context.Context, favoriteID int64) (models.Result, error)
}

// Favorites is the favorites page
type Favorites struct {
	api     ListAPI
	timeout time.Duration
}

// NewFavorites creates Favorites. A zero timeout means ListTimeout.
func NewFavorites(api ListAPI, timeout time.Duration) *Favorites {
	if timeout <= 0 {
		timeout = ListTimeout
	}
	return &Favorites{api: api, timeout: timeout}
}

// Load fetches and classifies the favorites list
func (f *Favorites) Load(ctx context.Context) Result[models.Favorite] {
	res, err := f.api.Favorites(ctx, f.timeout)
	status := res.Status
	if err != nil {
		status = statusOf(err)
	}
	out := Classify[models.Favorite](status, res.Body, KeyFavorites, favoritesTexts)
	logLoad("favorites", status, out.State, len(out.Items), err)
	return out
}

// Removal is the outcome of removing a favorite: the alert text and, on
// success, the reloaded list.
type Removal struct {
	Removed bool
	Message string
	List    Result[models.Favorite]
}

// Remove deletes one favorite and reloads the list on success
func (f *Favorites) Remove(ctx context.Context, favoriteID int64) (Removal, error) {
	if favoriteID <= 0 {
		return Removal{Message: "즐겨찾기 " + pageerrors.ErrMissingID.Error()}, pageerrors.ErrMissingID
	}

	res, err := f.api.DeleteFavorite(ctx, favoriteID)
	if err != nil {
		utils.Error("listing: remove favorite failed", map[string]any{
			"favorite_id": favoriteID,
			"error":       err.Error(),
		})
		return Removal{Message: removeMessage(err)}, fmt.Errorf("listing: remove favorite %d: %w", favoriteID, err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = msgUnknownReason
		}
		return Removal{Message: msgRemovePrefix + msg}, pageerrors.NewBusinessError(http.StatusOK, msg)
	}

	utils.Info("listing: favorite removed", map[string]any{"favorite_id": favoriteID})
	return Removal{Removed: true, Message: msgRemoved, List: f.Load(ctx)}, nil
}

func removeMessage(err error) string {
	if be, ok := pageerrors.AsBackend(err); ok && be.Status == http.StatusNotFound {
		return msgFavoriteGone
	}
	return pageerrors.UserMessage(err, msgRemoveError)
}

// Alerts is the price alert page
type Alerts struct {
	api     ListAPI
	timeout time.Duration
}

// NewAlerts creates Alerts. A zero timeout means ListTimeout.
func NewAlerts(api ListAPI, timeout time.Duration) *Alerts {
	if timeout <= 0 {
		timeout = ListTimeout
	}
	return &Alerts{api: api, timeout: timeout}
}

// Load fetches and classifies the price alert list
func (a *Alerts) Load(ctx context.Context) Result[models.PriceAlert] {
	res, err := a.api.PriceAlerts(ctx, a.timeout)
	status := res.Status
	if err != nil {
		status = statusOf(err)
	}
	out := Classify[models.PriceAlert](status, res.Body, KeyAlerts, alertsTexts)
	logLoad("alerts", status, out.State, len(out.Items), err)
	return out
}

func statusOf(err error) int {
	if be, ok := pageerrors.AsBackend(err); ok {
		return be.Status
	}
	return 0
}

func logLoad(list string, status int, state State, n int, err error) {
	fields := map[string]any{
		"list":   list,
		"status": status,
		"state":  string(state),
		"count":  n,
	}
	if err != nil {
		fields["error"] = err.Error()
		utils.Warn("listing: load failed", fields)
		return
	}
	utils.Debug("listing: loaded", fields)
}
