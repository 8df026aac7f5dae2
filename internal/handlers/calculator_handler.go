// internal/handlers/calculator_handler.go

package handlers

import (
	"errors"
	"net/http"

	"solarhub/internal/load"
	"solarhub/internal/pricing"
	"solarhub/internal/service"
	"solarhub/internal/sizing"

	"github.com/gin-gonic/gin"
)

// LoadRequest carries the appliance form. Counts may be numbers or strings.
type LoadRequest struct {
	Inventory load.FormValues `json:"inventory"`
}

// SizeRequest sizes either an appliance inventory or a known consumption figure.
type SizeRequest struct {
	Strategy           string          `json:"strategy"`
	Inventory          load.FormValues `json:"inventory"`
	DailyConsumption   load.Figure     `json:"dailyConsumption"`
	MonthlyConsumption load.Figure     `json:"monthlyConsumption"`
}

// PriceRequest is the configurator form. The panel quantity may arrive as text.
type PriceRequest struct {
	PanelQuantity load.Count `json:"panelQuantity"`
	pricing.Input
}

func (r PriceRequest) components() pricing.Input {
	in := r.Input
	in.PanelQuantity = int(r.PanelQuantity)
	return in
}

type CalculatorHandler struct {
	calculator *service.CalculatorService
}

func NewCalculatorHandler(calculator *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator}
}

// Load aggregates the connected load without validating it.
func (h *CalculatorHandler) Load(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	respondOK(c, http.StatusOK, "load calculated", h.calculator.Load(req.Inventory.Inventory()))
}

func (h *CalculatorHandler) Size(c *gin.Context) {
	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}

	est, err := h.calculator.Size(service.SizeInput{
		Inventory:  req.Inventory.Inventory(),
		DailyKWh:   float64(req.DailyConsumption),
		MonthlyKWh: float64(req.MonthlyConsumption),
		Strategy:   req.Strategy,
	})
	if err != nil {
		respondSizingError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "system sized", est)
}

// Price quotes an installation bundle without persisting it.
func (h *CalculatorHandler) Price(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	result, err := h.calculator.Price(req.components())
	if err != nil {
		respondError(c, "please fill all required fields", err)
		return
	}
	respondOK(c, http.StatusOK, "installation priced", result)
}

func respondSizingError(c *gin.Context, err error) {
	if errors.Is(err, sizing.ErrUnknownStrategy) {
		respondBadRequest(c, "invalid strategy", err)
		return
	}
	respondError(c, "cannot size system", err)
}
