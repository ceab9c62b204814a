package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domain"
	checkoutsvc "storefront-backend/internal/service/checkout"
)

// newSessionHandler mints a session ID for clients that do not bring their
// own. The ID is opaque; the server never validates cart contents.
func newSessionHandler(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"sessionId": uuid.NewString()})
}

type lineItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	VariantKey string `json:"variantKey" binding:"required"`
}

func getCartHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Cart(c.Request.Context(), sessionID(c)))
	}
}

func addItemHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in lineItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		view, err := svc.AddItem(c.Request.Context(), sessionID(c), in.ProductID, in.VariantKey)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func changeQuantityHandler(svc CheckoutService, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in lineItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		sid := sessionID(c)
		var (
			view *checkoutsvc.CartView
			err  error
		)
		switch op {
		case "increase":
			view, err = svc.IncreaseQuantity(ctx, sid, in.ProductID, in.VariantKey)
		case "decrease":
			view, err = svc.DecreaseQuantity(ctx, sid, in.ProductID, in.VariantKey)
		case "remove":
			view, err = svc.RemoveItem(ctx, sid, in.ProductID, in.VariantKey)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func applyCouponHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in applyCouponRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		applied, err := svc.ApplyCoupon(c.Request.Context(), sessionID(c), in.Code)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupon": applied})
	}
}

func quoteHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Quote(c.Request.Context(), sessionID(c)))
	}
}

type submitRequest struct {
	Customer      domain.CustomerInfo `json:"customer"`
	PaymentMethod string              `json:"paymentMethod"`
}

func submitHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in submitRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		submission, err := svc.Submit(c.Request.Context(), sessionID(c), in.Customer, in.PaymentMethod)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, submission)
	}
}
