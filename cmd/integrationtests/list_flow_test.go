package integrationtests

import (
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestFavorites_ResponseShapes(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantState string
		wantCount string
		contains  string
	}{
		{
			name:      "array",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":[{"favoriteId":1,"cltrNo":"C-1","address":"서울"},{"favoriteId":2,"cltrNo":"C-2","address":"부산","uscbCnt":3}]}`,
			wantState: "rendered",
			wantCount: "2",
			contains:  "유찰 3회",
		},
		{
			name:      "single_object",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":{"id":5,"cltrNo":"C-5","address":"대구"}}`,
			wantState: "rendered",
			wantCount: "1",
			contains:  `data-favorite-id="5"`,
		},
		{
			name:      "empty",
			status:    http.StatusOK,
			body:      `{"success":true,"favorites":[]}`,
			wantState: "empty",
			wantCount: "0",
			contains:  "즐겨찾기한 상품이 없습니다",
		},
		{
			name:      "login_required",
			status:    http.StatusUnauthorized,
			body:      `{"success":true,"favorites":[]}`,
			wantState: "login_required",
			wantCount: "0",
			contains:  "로그인이 필요합니다",
		},
		{
			name:      "rejected",
			status:    http.StatusOK,
			body:      `{"success":false,"message":"세션이 만료되었습니다."}`,
			wantState: "error",
			wantCount: "0",
			contains:  "세션이 만료되었습니다.",
		},
		{
			name:      "server_error",
			status:    http.StatusInternalServerError,
			body:      `oops`,
			wantState: "error",
			wantCount: "0",
			contains:  "서버 오류가 발생했습니다",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFakeBackend()
			fb.Engine.GET("/api/favorites", func(c *gin.Context) {
				c.Data(tt.status, "application/json", []byte(tt.body))
			})
			router, _ := SetupPageServer(t, fb.Start(t))

			w := NewBrowser(router).Get("/pages/favorites")
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tt.wantState, w.Header().Get("X-List-State"))
			require.Equal(t, tt.wantCount, w.Header().Get("X-List-Count"))
			require.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestFavorites_RemoveReloadsList(t *testing.T) {
	fb := NewFakeBackend()
	var removed atomic.Bool
	fb.Engine.GET("/api/favorites", func(c *gin.Context) {
		if removed.Load() {
			c.JSON(http.StatusOK, gin.H{"success": true, "favorites": []gin.H{{"favoriteId": 8, "cltrNo": "C-8"}}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "favorites": []gin.H{{"favoriteId": 7}, {"favoriteId": 8}}})
	})
	fb.Engine.DELETE("/api/favorites/:id", func(c *gin.Context) {
		if c.Param("id") != "7" {
			c.JSON(http.StatusNotFound, gin.H{"success": false})
			return
		}
		removed.Store(true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	w := b.PostForm("/pages/favorites/7/delete", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "즐겨찾기에서 삭제되었습니다.", ParseResponse(t, w)["message"])
	data := Data(t, w)
	require.Equal(t, "1건", data["count"])
	require.Contains(t, data["html"], `data-favorite-id="8"`)
	require.NotContains(t, data["html"], `data-favorite-id="7"`)
	require.Equal(t, 1, fb.Calls(http.MethodGet, "/api/favorites"))

	w = b.PostForm("/pages/favorites/9/delete", url.Values{})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "즐겨찾기를 찾을 수 없습니다.", ParseResponse(t, w)["message"])

	w = b.PostForm("/pages/favorites/0/delete", url.Values{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, fb.Calls(http.MethodDelete, "/api/favorites/0"))
}

func TestPriceAlerts(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.GET("/api/favorites/alerts/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "alerts": []gin.H{
			{"itemPlnmNo": "A-1", "previousPrice": 1000000, "newPrice": 900000, "alertSent": true, "sentDate": "2024-03-05T14:30:00"},
			{"itemPlnmNo": "A-2", "previousPrice": 500000, "newPrice": 500000},
		}})
	})
	router, _ := SetupPageServer(t, fb.Start(t))

	w := NewBrowser(router).Get("/pages/alerts")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2", w.Header().Get("X-List-Count"))

	html := w.Body.String()
	require.Contains(t, html, "price-down")
	require.Contains(t, html, "price-same")
	require.Contains(t, html, "900,000원")
	require.Contains(t, html, "전송완료")
	require.Contains(t, html, "대기중")
}

func TestReplies_InsertRendersList(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.POST("/insertReply.ajax", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"no": 1, "id": "hong", "content": "<b>첫 댓글</b>", "displayRegDate": "2024-03-05", "canEdit": true},
		})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	w := b.PostForm("/pages/boards/3/replies", url.Values{"loginId": {"hong"}, "content": {"<b>첫 댓글</b>"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "&lt;b&gt;첫 댓글&lt;/b&gt;")
	require.Contains(t, w.Body.String(), "/pages/boards/3/replies/1/delete")

	w = b.PostForm("/pages/boards/3/replies", url.Values{"loginId": {"hong"}, "content": {"   "}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 1, fb.Calls(http.MethodPost, "/insertReply.ajax"))
}
