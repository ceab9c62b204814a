package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := productrepo.Filters{
			Query:    c.Query("q"),
			Category: c.Query("category"),
			Size:     c.Query("size"),
			Color:    c.Query("color"),
		}
		page := intQuery(c, "page", 1)
		limit := intQuery(c, "limit", 0)

		c.JSON(http.StatusOK, svc.Search(c.Request.Context(), filters, page, limit))
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func saveProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Product
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "BAD_REQUEST", "message": err.Error()})
			return
		}
		saved, err := svc.Save(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
