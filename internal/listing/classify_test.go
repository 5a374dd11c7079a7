package listing

import (
	"net/http"
	"testing"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"

	"github.com/stretchr/testify/require"
)

var testTexts = Texts{Rejected: "rejected", LoadError: "load error"}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantState State
		wantCount int
		wantMsg   string
	}{
		{
			name:      "unauthorized_overrides_body",
			status:    http.StatusUnauthorized,
			body:      `{"success":true,"favorites":[{"id":1}]}`,
			wantState: StateLoginRequired,
			wantMsg:   pageerrors.MsgLoginRequired,
		},
		{
			name:      "forbidden",
			status:    http.StatusForbidden,
			wantState: StateLoginRequired,
			wantMsg:   pageerrors.MsgLoginRequired,
		},
		{
			name:      "no_connection",
			status:    0,
			wantState: StateError,
			wantMsg:   pageerrors.MsgNoConnection,
		},
		{
			name:      "server_error",
			status:    http.StatusInternalServerError,
			body:      `{"success":false,"message":"boom"}`,
			wantState: StateError,
			wantMsg:   pageerrors.MsgServerError,
		},
		{
			name:      "other_status",
			status:    http.StatusNotFound,
			wantState: StateError,
			wantMsg:   "load error",
		},
		{
			name:      "null_body",
			status:    http.StatusOK,
			body:      `null`,
			wantState: StateError,
			wantMsg:   "서버 응답이 없습니다.",
		},
		{
			name:      "empty_body",
			status:    http.StatusOK,
			body:      ``,
			wantState: StateError,
			wantMsg:   "서버 응답이 없습니다.",
		},
		{
			name:      "empty_array",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":[]}`,
			wantState: StateEmpty,
		},
		{
			name:      "null_collection",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":null}`,
			wantState: StateEmpty,
		},
		{
			name:      "one_row",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":[{"favoriteId":3,"cltrNo":"C-3"}]}`,
			wantState: StateRendered,
			wantCount: 1,
		},
		{
			name:      "single_object_coerced",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":{"favoriteId":3,"cltrNo":"C-3"}}`,
			wantState: StateRendered,
			wantCount: 1,
		},
		{
			name:      "rejected_with_message",
			status:    http.StatusOK,
			body:      `{"success":false,"message":"X"}`,
			wantState: StateError,
			wantMsg:   "X",
		},
		{
			name:      "rejected_without_message",
			status:    http.StatusOK,
			body:      `{"success":false}`,
			wantState: StateError,
			wantMsg:   "rejected",
		},
		{
			name:      "missing_success",
			status:    http.StatusOK,
			body:      `{"favorites":[]}`,
			wantState: StateUnexpected,
			wantMsg:   "응답 형식이 올바르지 않습니다.",
		},
		{
			name:      "missing_collection",
			status:    http.StatusOK,
			body:      `{"success":true}`,
			wantState: StateUnexpected,
			wantMsg:   "응답 형식이 올바르지 않습니다.",
		},
		{
			name:      "collection_is_scalar",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":"nope"}`,
			wantState: StateUnexpected,
			wantMsg:   "응답 형식이 올바르지 않습니다.",
		},
		{
			name:      "not_json",
			status:    http.StatusOK,
			body:      `<html>`,
			wantState: StateUnexpected,
			wantMsg:   "응답 형식이 올바르지 않습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify[models.Favorite](tt.status, []byte(tt.body), KeyFavorites, testTexts)

			require.Equal(t, tt.wantState, got.State)
			require.Len(t, got.Items, tt.wantCount)
			require.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestClassify_SingleObjectKeepsFields(t *testing.T) {
	got := Classify[models.Favorite](http.StatusOK, []byte(`{"success":true,"favorites":{"favoriteId":3,"cltrNo":"C-3"}}`), KeyFavorites, testTexts)

	require.Equal(t, []models.Favorite{{FavoriteID: 3, CltrNo: "C-3"}}, got.Items)
}

func TestResult_Count(t *testing.T) {
	empty := Classify[models.Favorite](http.StatusOK, []byte(`{"success":true,"favorites":[]}`), KeyFavorites, testTexts)
	require.Equal(t, "0건", empty.Count())

	two := Classify[models.PriceAlert](http.StatusOK, []byte(`{"success":true,"alerts":[{},{}]}`), KeyAlerts, testTexts)
	require.Equal(t, "2건", two.Count())
}
