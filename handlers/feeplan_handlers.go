package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// FeePlanHandler handles fee plan HTTP requests
type FeePlanHandler struct {
	feePlanService *services.FeePlanService
}

// NewFeePlanHandler creates a new fee plan handler
func NewFeePlanHandler(feePlanService *services.FeePlanService) *FeePlanHandler {
	return &FeePlanHandler{feePlanService: feePlanService}
}

// CreateFeePlan handles POST /feeplans
func (h *FeePlanHandler) CreateFeePlan(c *gin.Context) {
	var request models.CreateFeePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	plan, err := h.feePlanService.CreateFeePlan(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdateFeePlan handles PUT /feeplans/:id
func (h *FeePlanHandler) UpdateFeePlan(c *gin.Context) {
	var request models.UpdateFeePlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	plan, err := h.feePlanService.UpdateFeePlan(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plan)
}

// ListFeePlans handles GET /feeplans
func (h *FeePlanHandler) ListFeePlans(c *gin.Context) {
	plans, err := h.feePlanService.ListFeePlans()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plans)
}

// GetFeePlan handles GET /feeplans/:id
func (h *FeePlanHandler) GetFeePlan(c *gin.Context) {
	plan, err := h.feePlanService.GetFeePlan(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plan)
}

// GetFeePlanTotals handles GET /feeplans/:id/totals. Totals are derived
// on every call so they always reflect the latest edit.
func (h *FeePlanHandler) GetFeePlanTotals(c *gin.Context) {
	plan, err := h.feePlanService.GetFeePlan(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, h.feePlanService.CalculateTotals(plan))
}

// AddFeeItem handles POST /feeplans/:id/items
func (h *FeePlanHandler) AddFeeItem(c *gin.Context) {
	var request models.AddFeeItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	plan, err := h.feePlanService.AddFeeItem(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plan)
}

// RemoveFeeItem handles DELETE /feeplans/:id/items/:index
func (h *FeePlanHandler) RemoveFeeItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid fee item index"))
		return
	}

	plan, err := h.feePlanService.RemoveFeeItem(c.Param("id"), index)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, plan)
}
