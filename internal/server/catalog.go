package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
)

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateCategory(c.Request.Context(), catalogdomain.CreateCategoryRequest{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCategories(c *gin.Context) {
	resp, err := s.catalogSvc.ListCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.GetCategory(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.UpdateCategory(c.Request.Context(), id, catalogdomain.CreateCategoryRequest{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.catalogSvc.DeleteCategory(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetItemsTable(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.GetItemsTable(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type createQualityRequest struct {
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) CreateQuality(c *gin.Context) {
	var req createQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateQuality(c.Request.Context(), catalogdomain.CreateQualityRequest{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQualities(c *gin.Context) {
	categoryID := parseOptionalInt(c.Query("category_id"), 0)

	resp, err := s.catalogSvc.ListQualities(c.Request.Context(), int64(categoryID))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteQuality(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.catalogSvc.DeleteQuality(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

type createSizeRequest struct {
	CategoryID  int64  `json:"category_id"`
	SizeValue   string `json:"size_value"`
	SizeDisplay string `json:"size_display"`
	SortOrder   int    `json:"sort_order"`
}

func (s *Server) CreateSize(c *gin.Context) {
	var req createSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateSize(c.Request.Context(), catalogdomain.CreateSizeRequest{
		CategoryID:  req.CategoryID,
		SizeValue:   strings.TrimSpace(req.SizeValue),
		SizeDisplay: strings.TrimSpace(req.SizeDisplay),
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSizes(c *gin.Context) {
	categoryID := parseOptionalInt(c.Query("category_id"), 0)

	resp, err := s.catalogSvc.ListSizes(c.Request.Context(), int64(categoryID))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSize(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.catalogSvc.DeleteSize(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

type createItemRequest struct {
	CategoryID        int64   `json:"category_id"`
	QualityID         int64   `json:"quality_id"`
	SizeID            int64   `json:"size_id"`
	SKU               *string `json:"sku"`
	Unit              string  `json:"unit"`
	SellingPrice      float64 `json:"selling_price"`
	GSTPercentage     float64 `json:"gst_percentage"`
	StockQuantity     float64 `json:"stock_quantity"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
}

func (s *Server) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateItem(c.Request.Context(), catalogdomain.CreateItemRequest{
		CategoryID:        req.CategoryID,
		QualityID:         req.QualityID,
		SizeID:            req.SizeID,
		SKU:               req.SKU,
		Unit:              strings.TrimSpace(req.Unit),
		SellingPrice:      req.SellingPrice,
		GSTPercentage:     req.GSTPercentage,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type bulkCreateItemsRequest struct {
	CategoryID       int64   `json:"category_id"`
	QualityIDs       []int64 `json:"quality_ids"`
	SizeIDs          []int64 `json:"size_ids"`
	Unit             string  `json:"unit"`
	DefaultPrice     float64 `json:"default_price"`
	DefaultGST       float64 `json:"default_gst"`
	DefaultThreshold float64 `json:"default_threshold"`
}

func (s *Server) BulkCreateItems(c *gin.Context) {
	var req bulkCreateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.BulkCreateItems(c.Request.Context(), catalogdomain.BulkCreateItemsRequest{
		CategoryID:       req.CategoryID,
		QualityIDs:       req.QualityIDs,
		SizeIDs:          req.SizeIDs,
		Unit:             strings.TrimSpace(req.Unit),
		DefaultPrice:     req.DefaultPrice,
		DefaultGST:       req.DefaultGST,
		DefaultThreshold: req.DefaultThreshold,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"created": len(resp), "items": resp}})
}

func (s *Server) ListItems(c *gin.Context) {
	var query struct {
		CategoryID int64 `form:"category_id"`
		QualityID  int64 `form:"quality_id"`
		SizeID     int64 `form:"size_id"`
		LowStock   bool  `form:"low_stock"`
		Offset     int   `form:"offset"`
		Limit      int   `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.ListItems(c.Request.Context(), catalogdomain.ListItemsFilter{
		CategoryID:   query.CategoryID,
		QualityID:    query.QualityID,
		SizeID:       query.SizeID,
		LowStockOnly: query.LowStock,
		Offset:       query.Offset,
		Limit:        query.Limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLowStockItems(c *gin.Context) {
	resp, err := s.catalogSvc.ListLowStockItems(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.GetItem(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var patch catalogdomain.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.UpdateItem(c.Request.Context(), id, patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setStockRequest struct {
	StockQuantity *float64 `json:"stock_quantity"`
}

func (s *Server) SetStock(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req setStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StockQuantity == nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.SetStock(c.Request.Context(), id, *req.StockQuantity)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.catalogSvc.DeleteItem(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
