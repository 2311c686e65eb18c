package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
)

func (s *Server) GetSettings(c *gin.Context) {
	resp, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateSettingsRequest struct {
	ShopName    string  `json:"shop_name"`
	ShopAddress *string `json:"shop_address"`
	ShopPhone   *string `json:"shop_phone"`
	ShopEmail   *string `json:"shop_email"`
	ShopGSTIN   *string `json:"shop_gstin"`
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.settingsSvc.Update(c.Request.Context(), settingsdomain.UpdateSettingsRequest{
		ShopName:    strings.TrimSpace(req.ShopName),
		ShopAddress: req.ShopAddress,
		ShopPhone:   req.ShopPhone,
		ShopEmail:   req.ShopEmail,
		ShopGSTIN:   req.ShopGSTIN,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
