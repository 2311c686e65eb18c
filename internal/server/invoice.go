package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetInvoice(c *gin.Context) {
	saleID, err := parseID(c.Param("saleID"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Build(c.Request.Context(), saleID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	saleID, err := parseID(c.Param("saleID"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := s.invoiceSvc.RenderPDF(c.Request.Context(), saleID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, doc); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", saleID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
