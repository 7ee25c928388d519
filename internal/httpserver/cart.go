package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dollshop-backend/internal/service/cart"
)

func findCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		ct, err := svc.FindOne(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ct)
	}
}

// findCartIDHandler resolves a user id to that user's cart.
func findCartIDHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := paramID(c, "id")
		if !ok {
			return
		}
		ct, err := svc.FindByUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cartId": ct.ID})
	}
}

func findCartProductsHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		lines, err := svc.FindAllProducts(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

func addProductHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.AddProduct(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

func addProductWithOptionHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddWithOptionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.AddProductWithOption(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

func updateProductWithOptionHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in cart.UpdateWithOptionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.UpdateProductWithOption(c.Request.Context(), lineID, in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func updateAddedProductHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in cart.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.UpdateAddedProduct(c.Request.Context(), lineID, in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteAddedProductHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.RemoveInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.DeleteAddedProduct(c.Request.Context(), in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
