package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"markethub/internal/application"
	"markethub/pkg/response"
	"markethub/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// UnitPrice and Quantity are pointers so a legitimate zero passes required.
type createProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description" binding:"required"`
	PictureURL  string         `json:"pictureUrl" binding:"omitempty"`
	UnitPrice   *float64       `json:"unitPrice" binding:"required,gte=0"`
	Quantity    *float64       `json:"quantity" binding:"required,gte=0"`
	MeasureType string         `json:"measureType" binding:"required"`
	Attributes  map[string]any `json:"attributes" binding:"required"`
}

type updateProductRequest struct {
	Name        *string        `json:"name" binding:"omitempty"`
	Description *string        `json:"description" binding:"omitempty"`
	PictureURL  *string        `json:"pictureUrl" binding:"omitempty"`
	UnitPrice   *float64       `json:"unitPrice" binding:"omitempty,gte=0"`
	Quantity    *float64       `json:"quantity" binding:"omitempty,gte=0"`
	MeasureType *string        `json:"measureType" binding:"omitempty"`
	Attributes  map[string]any `json:"attributes" binding:"omitempty"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), application.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PictureURL:  req.PictureURL,
		UnitPrice:   *req.UnitPrice,
		Quantity:    *req.Quantity,
		MeasureType: req.MeasureType,
		Attributes:  req.Attributes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.Svc.GetAllProducts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.UpdateProduct(c.Request.Context(), c.Param("id"), application.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PictureURL:  req.PictureURL,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		MeasureType: req.MeasureType,
		Attributes:  req.Attributes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
