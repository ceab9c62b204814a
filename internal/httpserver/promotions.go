package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domain"
)

func getPromotionsHandler(svc PromotionsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Get(c.Request.Context()))
	}
}

func updatePromotionsHandler(svc PromotionsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Promotions
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, in)
	}
}
