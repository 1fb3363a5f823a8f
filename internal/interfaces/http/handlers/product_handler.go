package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"soko.backend/internal/config"
	"soko.backend/internal/domain/entities"
	domainerrors "soko.backend/internal/domain/errors"
	"soko.backend/internal/interfaces/http/middleware"
	"soko.backend/internal/interfaces/http/response"
	"soko.backend/internal/usecases"
	"soko.backend/pkg/utils"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ProductHandler handles product catalogue endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
	uploads        config.UploadsConfig
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase, uploads config.UploadsConfig) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, uploads: uploads}
}

// Create adds a product to the merchant's catalogue
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ProductCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), merchantID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// Get returns a product with images and ratings
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	product, err := h.productUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// List returns a filtered page of products
// GET /api/v1/products?merchantId=&marketId=&category=&search=
func (h *ProductHandler) List(c *gin.Context) {
	var filter entities.ProductFilter

	if raw := c.Query("merchantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid merchantId"))
			return
		}
		filter.MerchantID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if raw := c.Query("marketId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid marketId"))
			return
		}
		filter.MarketID = uuid.NullUUID{UUID: id, Valid: true}
	}
	filter.Category = entities.ProductCategory(c.Query("category"))
	filter.Search = c.Query("search")

	params := utils.ParsePageParams(c)
	products, total, err := h.productUsecase.List(c.Request.Context(), filter, params.PageSize, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, utils.NewPage(products, total, params))
}

// Update applies partial updates to the merchant's product
// PATCH /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), merchantID, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Delete removes the merchant's product
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), merchantID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadImages attaches uploaded images to the merchant's product
// POST /api/v1/products/:id/images  (multipart field "images")
func (h *ProductHandler) UploadImages(c *gin.Context) {
	merchantID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("expected multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, domainerrors.BadRequest("no images provided"))
		return
	}
	if len(files) > h.uploads.MaxPerUpload {
		response.Error(c, domainerrors.BadRequest("too many images in one upload"))
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > h.uploads.MaxSizeBytes {
			response.Error(c, domainerrors.BadRequest("image exceeds maximum size"))
			return
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			response.Error(c, domainerrors.BadRequest("unsupported image type"))
			return
		}

		name := uuid.New().String() + ext
		dst := filepath.Join(h.uploads.Dir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			response.Error(c, domainerrors.InternalError(err))
			return
		}
		urls = append(urls, "/uploads/"+name)
	}

	product, err := h.productUsecase.AddImages(c.Request.Context(), merchantID, id, urls)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}
