package handler

import (
	"net/http"

	"checkout/internal/service"
	"checkout/pkg/pagination"
	"checkout/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/api")
	{
		catalog.GET("/products", h.GetProducts)
		catalog.GET("/taxes", h.GetTaxes)
	}
}

// GetProducts handles retrieving the paginated product catalog
// @Summary      Get products
// @Description  Retrieves a paginated list of products
// @Tags         catalog
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=[]service.ProductResponse}
// @Failure      500    {object}  response.Response
// @Router       /api/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := pagination.Parse(c)

	products, total, err := h.catalogService.ListProducts(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Page(http.StatusOK, products, params.Meta(total)))
}

// GetTaxes lists the countries whose tax numbers are accepted
// @Summary      Get taxes
// @Description  Retrieves the VAT rate of every supported country
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TaxResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/taxes [get]
func (h *CatalogHandler) GetTaxes(c *gin.Context) {
	taxes, err := h.catalogService.ListTaxes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, taxes))
}
