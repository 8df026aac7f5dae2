// internal/handlers/installation_handler.go

package handlers

import (
	"net/http"

	"solarhub/internal/service"
	"solarhub/internal/types"

	"github.com/gin-gonic/gin"
)

// InstallationRequest is the new installation configurator submission.
// Component fields sit at the top level of the JSON object.
type InstallationRequest struct {
	QuotationID  *uint  `json:"quotationId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Status       string `json:"status"`
	PriceRequest
}

func (r InstallationRequest) toInput() service.InstallationInput {
	return service.InstallationInput{
		QuotationID:  r.QuotationID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		City:         r.City,
		Components:   r.components(),
		Status:       types.InstallationStatus(r.Status),
	}
}

type InstallationHandler struct {
	installations *service.InstallationService
}

func NewInstallationHandler(installations *service.InstallationService) *InstallationHandler {
	return &InstallationHandler{installations: installations}
}

func (h *InstallationHandler) List(c *gin.Context) {
	items, err := h.installations.List(c.Query("status"))
	if err != nil {
		respondError(c, "failed to list installations", err)
		return
	}
	respondOK(c, http.StatusOK, "installations listed", items)
}

func (h *InstallationHandler) Create(c *gin.Context) {
	var req InstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	inst, err := h.installations.Create(req.toInput())
	if err != nil {
		respondError(c, "failed to create installation", err)
		return
	}
	respondOK(c, http.StatusCreated, "installation created", inst)
}

func (h *InstallationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inst, err := h.installations.Get(id)
	if err != nil {
		respondError(c, "installation not found", err)
		return
	}
	respondOK(c, http.StatusOK, "installation found", inst)
}

func (h *InstallationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req InstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	inst, err := h.installations.Update(id, req.toInput())
	if err != nil {
		respondError(c, "failed to update installation", err)
		return
	}
	respondOK(c, http.StatusOK, "installation updated", inst)
}

func (h *InstallationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.installations.Delete(id); err != nil {
		respondError(c, "failed to delete installation", err)
		return
	}
	respondOK(c, http.StatusOK, "installation deleted", nil)
}
