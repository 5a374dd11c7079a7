package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-web/internal/models"
	"auction-web/internal/pageerrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, router *gin.Engine) *Client {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient("/api", time.Second)
	require.Error(t, err)
}

func TestClient_SubmitBid(t *testing.T) {
	router := newRouter()
	var got map[string]any
	var gotRequestID string
	router.POST(PathSubmitBid, func(c *gin.Context) {
		gotRequestID = c.GetHeader(HeaderRequestID)
		assert.NoError(t, c.ShouldBindJSON(&got))
		c.JSON(http.StatusOK, gin.H{"success": true, "paymentId": 42})
	})
	client := newTestClient(t, router)

	itemID := int64(34)
	ctx := WithRequestID(context.Background(), "rid-1")
	res, err := client.SubmitBid(ctx, models.SubmitBidRequest{
		Amount:   50000,
		ItemName: "토지",
		BidDraft: models.BidDraft{BidAmount: 1000000, DepositAmount: 50000, BidMethod: models.BidMethodSelf},
		ItemRef:  models.ItemRef{ItemID: &itemID},
	})

	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, models.FlexID("42"), res.PaymentID)
	require.Equal(t, "rid-1", gotRequestID)
	require.Equal(t, 34.0, got["itemId"])
	require.NotContains(t, got, "auctionNo")
	require.NotContains(t, got, "cltrNo")
}

func TestClient_SubmitBid_ConflictBodyDecoded(t *testing.T) {
	router := newRouter()
	router.POST(PathSubmitBid, func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"message":           "이미 입찰서가 작성되었습니다.",
			"existingPaymentId": 9,
		})
	})
	client := newTestClient(t, router)

	res, err := client.SubmitBid(context.Background(), models.SubmitBidRequest{})

	require.Error(t, err)
	be, ok := pageerrors.AsBackend(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, be.Status)
	require.Equal(t, "이미 입찰서가 작성되었습니다.", be.Message)
	require.Equal(t, models.FlexID("9"), res.ExistingPaymentID)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	router := newRouter()
	router.POST(PathPrepare, func(c *gin.Context) {
		c.String(http.StatusOK, "<html>login</html>")
	})
	client := newTestClient(t, router)

	_, err := client.PreparePayment(context.Background(), models.PrepareRequest{Amount: 1})

	require.ErrorIs(t, err, pageerrors.ErrUnexpectedShape)
	be, ok := pageerrors.AsBackend(err)
	require.True(t, ok)
	require.Equal(t, pageerrors.Transport, be.Kind)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	srv.Close()

	_, err = client.CompletePayment(context.Background(), models.CompleteRequest{ImpUID: "imp_1"})

	be, ok := pageerrors.AsBackend(err)
	require.True(t, ok)
	require.Equal(t, 0, be.Status)
}

func TestClient_Favorites_Raw(t *testing.T) {
	router := newRouter()
	router.GET(PathFavorites, func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
	})
	client := newTestClient(t, router)

	res, err := client.Favorites(context.Background(), time.Second)

	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.Status)
	require.JSONEq(t, `{"success":false}`, string(res.Body))
}

func TestClient_Favorites_Timeout(t *testing.T) {
	router := newRouter()
	router.GET(PathFavorites, func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	client := newTestClient(t, router)

	_, err := client.Favorites(context.Background(), 50*time.Millisecond)

	be, ok := pageerrors.AsBackend(err)
	require.True(t, ok)
	require.Equal(t, 0, be.Status)
}

func TestClient_DeleteFavorite(t *testing.T) {
	router := newRouter()
	var deleted string
	router.DELETE(PathFavorites+"/:id", func(c *gin.Context) {
		deleted = c.Param("id")
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	client := newTestClient(t, router)

	res, err := client.DeleteFavorite(context.Background(), 7)

	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "7", deleted)
}

func TestClient_DeletePayment_NotFound(t *testing.T) {
	client := newTestClient(t, newRouter())

	_, err := client.DeletePayment(context.Background(), 3)

	be, ok := pageerrors.AsBackend(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, be.Status)
}

func TestClient_FormEndpoints(t *testing.T) {
	router := newRouter()
	router.POST(PathFindPassword, func(c *gin.Context) {
		assert.Equal(t, "application/x-www-form-urlencoded", c.ContentType())
		assert.Equal(t, "user1", c.PostForm("id"))
		assert.Equal(t, "010", c.PostForm("mobile1"))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.POST(PathInsertReply, func(c *gin.Context) {
		assert.Equal(t, "12", c.PostForm("boardNo"))
		c.JSON(http.StatusOK, []gin.H{{"no": 1, "id": "user1", "content": c.PostForm("content"), "canEdit": true}})
	})
	client := newTestClient(t, router)

	res, err := client.FindPassword(context.Background(), "user1", "홍길동", "010", "12345678")
	require.NoError(t, err)
	require.True(t, res.Success)

	replies, err := client.InsertReply(context.Background(), 12, "user1", "좋아요")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, "좋아요", replies[0].Content)
	require.True(t, replies[0].CanEdit)
}

func TestClient_CarriesSessionCookie(t *testing.T) {
	router := newRouter()
	router.POST(PathIsPass, func(c *gin.Context) {
		c.SetCookie("JSESSIONID", "abc", 3600, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": true})
	})
	router.POST(PathMemberInfo, func(c *gin.Context) {
		cookie, err := c.Cookie("JSESSIONID")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": "user1", "name": cookie}})
	})
	client := newTestClient(t, router)

	jar, err := NewJar()
	require.NoError(t, err)
	ctx := WithJar(context.Background(), jar)

	_, err = client.IsPass(ctx, "user1", "pw")
	require.NoError(t, err)

	res, err := client.MemberInfo(ctx, "user1")
	require.NoError(t, err)
	var member models.Member
	require.NoError(t, json.Unmarshal(res.Data, &member))
	require.Equal(t, "abc", member.Name)
}

func TestClient_BackendCookiesStayWithTheirSession(t *testing.T) {
	router := newRouter()
	var seen []string
	router.GET(PathFavorites, func(c *gin.Context) {
		seen = append(seen, c.GetHeader("Cookie"))
		if c.GetHeader("Cookie") == "JSESSIONID=visitorA" {
			c.SetCookie("JSESSIONID", "rotatedA", 3600, "/", "", false, true)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "favorites": []gin.H{}})
	})
	client := newTestClient(t, router)

	jarA, err := NewJar()
	require.NoError(t, err)
	jarB, err := NewJar()
	require.NoError(t, err)

	visitorA := WithJar(WithCookie(context.Background(), "JSESSIONID=visitorA"), jarA)
	_, err = client.Favorites(visitorA, time.Second)
	require.NoError(t, err)

	// another visitor, anonymous, with or without a jar of its own
	_, err = client.Favorites(WithJar(context.Background(), jarB), time.Second)
	require.NoError(t, err)
	_, err = client.Favorites(context.Background(), time.Second)
	require.NoError(t, err)

	// the rotated cookie replaces the browser's stale one for visitor A
	_, err = client.Favorites(visitorA, time.Second)
	require.NoError(t, err)

	require.Equal(t, []string{"JSESSIONID=visitorA", "", "", "JSESSIONID=rotatedA"}, seen)
}

func TestClient_ForwardsBrowserCookie(t *testing.T) {
	router := newRouter()
	router.POST(PathMemberInfo, func(c *gin.Context) {
		cookie, _ := c.Cookie("JSESSIONID")
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": "user1", "name": cookie}})
	})
	client := newTestClient(t, router)

	ctx := WithCookie(context.Background(), "JSESSIONID=browser")
	res, err := client.MemberInfo(ctx, "user1")
	require.NoError(t, err)
	var member models.Member
	require.NoError(t, json.Unmarshal(res.Data, &member))
	require.Equal(t, "browser", member.Name)
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "x", ErrorMessage([]byte(`{"message":"x"}`)))
	require.Equal(t, "", ErrorMessage([]byte(`not json`)))
	require.Equal(t, "", ErrorMessage(nil))
}
