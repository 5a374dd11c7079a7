package integrationtests

import (
	"net/http"
	"net/url"
	"testing"

	"auction-web/internal/pageerrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func checkoutPage() url.Values {
	return url.Values{
		"hiddenAuctionNo": {"12"},
		"amount":          {"70000"},
		"itemName":        {"서울 토지"},
		"buyerName":       {"홍길동"},
		"buyerEmail":      {"hong@example.com"},
		"buyerPhone":      {"010-1234-5678"},
		"sdkLoaded":       {"true"},
	}
}

func TestCheckoutFlow_PrepareThenComplete(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.POST("/payment/prepare", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "merchantUid": "m-100"})
	})
	fb.Engine.POST("/payment/complete", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	query := "?bidAmount=1000000&depositAmount=50000&bidMethod=agent&selectedBank=%EA%B5%AD%EB%AF%BC"

	w := b.PostForm("/pages/checkout/prepare"+query, checkoutPage())
	require.Equal(t, http.StatusOK, w.Code)
	sdkReq := Data(t, w)
	require.Equal(t, "m-100", sdkReq["merchant_uid"])
	require.Equal(t, 50000.0, sdkReq["amount"])
	require.Equal(t, "html5_inicis", sdkReq["pg"])
	require.Equal(t, "card", sdkReq["pay_method"])
	require.Equal(t, "010-1234-5678", sdkReq["buyer_tel"])

	prepared := fb.JSONBody(t, http.MethodPost, "/payment/prepare")
	require.Equal(t, 50000.0, prepared["amount"])
	require.Equal(t, 12.0, prepared["auctionNo"])

	w = b.PostJSON(t, "/pages/checkout/callback"+query, gin.H{
		"merchantUid": "m-100",
		"response":    gin.H{"success": true, "imp_uid": "imp_1", "merchant_uid": "m-100"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		"/payment/success?merchantUid=m-100&bidAmount=1000000&depositAmount=50000&bidMethod=agent&selectedBank=%EA%B5%AD%EB%AF%BC",
		Data(t, w)["redirect"])

	completed := fb.JSONBody(t, http.MethodPost, "/payment/complete")
	require.Equal(t, "imp_1", completed["imp_uid"])
	require.Equal(t, "m-100", completed["merchant_uid"])
}

func TestCheckoutFlow_SDKFailureSkipsComplete(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.POST("/payment/complete", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	w := b.PostJSON(t, "/pages/checkout/callback", gin.H{
		"merchantUid": "m-1",
		"response":    gin.H{"success": false, "error_msg": "사용자 취소"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/payment/fail?message=%EC%82%AC%EC%9A%A9%EC%9E%90%20%EC%B7%A8%EC%86%8C", Data(t, w)["redirect"])
	require.Zero(t, fb.Calls(http.MethodPost, "/payment/complete"))
}

func TestCheckoutFlow_VerificationRejected(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.POST("/payment/complete", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": false})
	})
	router, _ := SetupPageServer(t, fb.Start(t))

	w := NewBrowser(router).PostJSON(t, "/pages/checkout/callback", gin.H{
		"merchantUid": "m-1",
		"response":    gin.H{"success": true, "imp_uid": "imp_1", "merchant_uid": "m-1"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/payment/fail?message=%EA%B2%B0%EC%A0%9C%20%EA%B2%80%EC%A6%9D%20%EC%8B%A4%ED%8C%A8", Data(t, w)["redirect"])
}

func TestCheckoutFlow_PrepareFailures(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.POST("/payment/prepare", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "이미 결제된 물건입니다."})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	t.Run("sdk_not_loaded", func(t *testing.T) {
		page := checkoutPage()
		page.Set("sdkLoaded", "false")

		w := b.PostForm("/pages/checkout/prepare", page)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, pageerrors.ErrPaymentSDKUnavailable.Error(), ParseResponse(t, w)["message"])
		require.Zero(t, fb.Calls(http.MethodPost, "/payment/prepare"))
	})

	t.Run("rejected", func(t *testing.T) {
		w := b.PostForm("/pages/checkout/prepare", checkoutPage())
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "이미 결제된 물건입니다.", ParseResponse(t, w)["message"])
	})
}

func TestMyPayments_DeleteAndCheckoutLink(t *testing.T) {
	fb := NewFakeBackend()
	fb.Engine.DELETE("/payment/delete/:id", func(c *gin.Context) {
		if c.Param("id") == "404" {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router, _ := SetupPageServer(t, fb.Start(t))
	b := NewBrowser(router)

	w := b.PostForm("/pages/payments/5/delete", url.Values{})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, fb.Calls(http.MethodDelete, "/payment/delete/5"))

	w = b.PostForm("/pages/payments/404/delete", url.Values{})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, pageerrors.MsgNotFound, ParseResponse(t, w)["message"])

	w = b.Get("/pages/payments/checkout-link?paymentId=null&itemId=4&cltrNo=C-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "/payment/checkout?itemId=4", Data(t, w)["redirect"])
}
