package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// PaymentSuccess handles GET /api/paypal/success.
func PaymentSuccess(c *gin.Context) {
	redirectHome(c, "success")
}

// PaymentCancel handles GET /api/paypal/cancel.
func PaymentCancel(c *gin.Context) {
	redirectHome(c, "cancelled")
}

func redirectHome(c *gin.Context, outcome string) {
	q := url.Values{}
	q.Set("payment", outcome)
	q.Set("token", c.Query("token"))
	c.Redirect(http.StatusFound, "/?"+q.Encode())
}
