package handler

import (
	"net/http"

	"legacy-server/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (h *WizardHandler) listLegacyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"legacyTypes": catalog.LegacyTypes()})
}

func (h *WizardHandler) listAudiences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"audiences": catalog.Audiences()})
}

func (h *WizardHandler) listDeliveryFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deliveryFormats": catalog.DeliveryFormats()})
}

func (h *WizardHandler) listTimelines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timelines": catalog.TimelineOptions()})
}

func (h *WizardHandler) listRelationships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"relationships": catalog.SubjectRelationships()})
}
