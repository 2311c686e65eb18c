package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
)

type createPurchaseRequest struct {
	SupplierID    *int64                      `json:"supplier_id"`
	InvoiceNumber *string                     `json:"invoice_number"`
	PurchaseDate  *string                     `json:"purchase_date"`
	Notes         *string                     `json:"notes"`
	Items         []ledgerdomain.PurchaseLine `json:"items"`
}

func (s *Server) CreatePurchase(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	purchaseDate, err := parseOptionalTimePtr(req.PurchaseDate)
	if err != nil {
		AbortWithError(c, newValidationError("purchase_date", "invalid_purchase_date", "invalid purchase_date"))
		return
	}

	resp, err := s.ledgerSvc.CreatePurchase(c.Request.Context(), ledgerdomain.CreatePurchaseRequest{
		SupplierID:    req.SupplierID,
		InvoiceNumber: req.InvoiceNumber,
		PurchaseDate:  purchaseDate,
		Notes:         req.Notes,
		Lines:         req.Items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPurchases(c *gin.Context) {
	var query struct {
		SupplierID int64  `form:"supplier_id"`
		StartDate  string `form:"start_date"`
		EndDate    string `form:"end_date"`
		Offset     int    `form:"offset"`
		Limit      int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	startDate, err := parseOptionalTime(query.StartDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("start_date", "invalid_start_date", "invalid start_date"))
		return
	}

	endDate, err := parseOptionalTime(query.EndDate, true)
	if err != nil {
		AbortWithError(c, newValidationError("end_date", "invalid_end_date", "invalid end_date"))
		return
	}

	resp, err := s.ledgerSvc.ListPurchases(c.Request.Context(), ledgerdomain.ListPurchasesFilter{
		SupplierID: query.SupplierID,
		StartDate:  startDate,
		EndDate:    endDate,
		Offset:     query.Offset,
		Limit:      query.Limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPurchase(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePurchase(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.ledgerSvc.DeletePurchase(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

type createSaleRequest struct {
	SaleDate *string                 `json:"sale_date"`
	Discount float64                 `json:"discount"`
	Items    []ledgerdomain.SaleLine `json:"items"`
}

func (s *Server) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	saleDate, err := parseOptionalTimePtr(req.SaleDate)
	if err != nil {
		AbortWithError(c, newValidationError("sale_date", "invalid_sale_date", "invalid sale_date"))
		return
	}

	resp, err := s.ledgerSvc.CreateSale(c.Request.Context(), ledgerdomain.CreateSaleRequest{
		SaleDate: saleDate,
		Discount: req.Discount,
		Lines:    req.Items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSales(c *gin.Context) {
	var query struct {
		StartDate string `form:"start_date"`
		EndDate   string `form:"end_date"`
		Offset    int    `form:"offset"`
		Limit     int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	startDate, err := parseOptionalTime(query.StartDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("start_date", "invalid_start_date", "invalid start_date"))
		return
	}

	endDate, err := parseOptionalTime(query.EndDate, true)
	if err != nil {
		AbortWithError(c, newValidationError("end_date", "invalid_end_date", "invalid end_date"))
		return
	}

	resp, err := s.ledgerSvc.ListSales(c.Request.Context(), ledgerdomain.ListSalesFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Offset:    query.Offset,
		Limit:     query.Limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSale(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.GetSale(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSale(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.ledgerSvc.DeleteSale(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func parseOptionalTimePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseOptionalTime(*value, false)
}
