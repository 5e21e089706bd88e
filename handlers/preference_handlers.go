package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/middleware"
	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// PreferenceHandler exposes the per-user key-value store used for
// client acknowledgment state (remembered email, read flags)
type PreferenceHandler struct {
	preferenceRepo *repository.PreferenceRepository
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceRepo *repository.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{preferenceRepo: preferenceRepo}
}

// GetPreference handles GET /preferences/:key
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	value, err := h.preferenceRepo.Get(c.GetString(middleware.ContextUserID), c.Param("key"))
	if err != nil {
		utils.HandleError(c, utils.NewNotFoundError("Preference"))
		return
	}

	utils.HandleSuccess(c, gin.H{"key": c.Param("key"), "value": value})
}

// SetPreference handles PUT /preferences/:key. Writes are best-effort:
// a failure is logged and the client still gets an acknowledgment, since
// preference state is never authoritative.
func (h *PreferenceHandler) SetPreference(c *gin.Context) {
	var request models.PreferenceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.preferenceRepo.Set(c.GetString(middleware.ContextUserID), c.Param("key"), request.Value); err != nil {
		log.Printf("Warning: failed to store preference %q: %v", c.Param("key"), err)
	}

	utils.HandleSuccess(c, gin.H{"key": c.Param("key"), "value": request.Value})
}

// ClearPreference handles DELETE /preferences/:key
func (h *PreferenceHandler) ClearPreference(c *gin.Context) {
	if err := h.preferenceRepo.Clear(c.GetString(middleware.ContextUserID), c.Param("key")); err != nil {
		log.Printf("Warning: failed to clear preference %q: %v", c.Param("key"), err)
	}

	utils.HandleSuccess(c, gin.H{"message": "Preference cleared"})
}
