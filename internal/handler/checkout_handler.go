package handler

import (
	"net/http"

	"checkout/internal/service"
	"checkout/pkg/response"

	"github.com/gin-gonic/gin"
)

const purchaseSuccessMessage = "Payment processed successfully"

// ProcessorLister exposes the registered payment method names.
type ProcessorLister interface {
	Names() []string
}

type CheckoutHandler struct {
	priceCalculator service.PriceCalculator
	purchaseService service.PurchaseService
	processors      ProcessorLister
}

func NewCheckoutHandler(priceCalculator service.PriceCalculator, purchaseService service.PurchaseService, processors ProcessorLister) *CheckoutHandler {
	return &CheckoutHandler{
		priceCalculator: priceCalculator,
		purchaseService: purchaseService,
		processors:      processors,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/calculate-price", h.CalculatePrice)
	router.POST("/purchase", h.Purchase)
	router.GET("/api/payment-processors", h.GetPaymentProcessors)
}

// CalculatePrice returns the final price of a product for a buyer
// @Summary      Calculate price
// @Description  Applies the optional coupon and the VAT of the buyer's country to the product price
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CalculatePriceRequest  true  "Calculate Price Payload"
// @Success      200      {object}  response.Response{data=service.CalculatePriceResponse}
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /calculate-price [post]
func (h *CheckoutHandler) CalculatePrice(c *gin.Context) {
	var req service.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	price, err := h.priceCalculator.Calculate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.CalculatePriceResponse{
		Price: service.MoneyJSON(price),
	}))
}

// Purchase calculates the price and charges it through the chosen payment processor
// @Summary      Purchase product
// @Description  Calculates the final price and pays it with the requested payment processor
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PurchaseRequest  true  "Purchase Payload"
// @Success      200      {object}  response.Response{data=service.PurchaseResponse}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /purchase [post]
func (h *CheckoutHandler) Purchase(c *gin.Context) {
	var req service.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.purchaseService.Purchase(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.PurchaseResponse{
		Success:   true,
		Price:     service.MoneyJSON(result.Price),
		Message:   purchaseSuccessMessage,
		Reference: result.Reference.String(),
	}))
}

// GetPaymentProcessors lists the payment processors accepted by /purchase
// @Summary      Get payment processors
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /api/payment-processors [get]
func (h *CheckoutHandler) GetPaymentProcessors(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.processors.Names()))
}
