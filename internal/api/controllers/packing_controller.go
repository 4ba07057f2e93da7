package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PackingController struct {
	packingService services.PackingServiceInterface
}

func NewPackingController(packingService services.PackingServiceInterface) *PackingController {
	return &PackingController{
		packingService: packingService,
	}
}

func (pc *PackingController) ListTripTypesHandler(c *gin.Context) {
	tripTypes, err := pc.packingService.ListTripTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tripTypes, "Fetched trip types successfully")
}

func (pc *PackingController) GetTripTypeHandler(c *gin.Context) {
	tripType, err := pc.packingService.GetTripType(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tripType, "Fetched trip type successfully")
}

func (pc *PackingController) AddItemHandler(c *gin.Context) {
	var req request_models.AddPackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := pc.packingService.AddItem(c.Request.Context(), c.Param("id"), req.Name, req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Added packing item successfully")
}

func (pc *PackingController) UpdateItemHandler(c *gin.Context) {
	var req request_models.UpdatePackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := pc.packingService.SetItemPacked(c.Request.Context(), c.Param("id"), c.Param("itemId"), *req.Packed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Updated packing item successfully")
}

func (pc *PackingController) DeleteItemHandler(c *gin.Context) {
	err := pc.packingService.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deleted packing item successfully")
}
