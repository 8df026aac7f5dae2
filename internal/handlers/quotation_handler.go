// internal/handlers/quotation_handler.go

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"solarhub/internal/db"
	"solarhub/internal/load"
	"solarhub/internal/service"
	"solarhub/internal/types"
	"solarhub/internal/utils"

	"github.com/gin-gonic/gin"
)

// QuotationRequest is the installation wizard submission.
type QuotationRequest struct {
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	PropertyType string          `json:"propertyType"`
	MonthlyBill  load.Count      `json:"monthlyBill"`
	Inventory    load.FormValues `json:"inventory"`
	Amount       *int64          `json:"amount"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

func (r QuotationRequest) toInput() service.QuotationInput {
	return service.QuotationInput{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		PropertyType: r.PropertyType,
		MonthlyBill:  int64(r.MonthlyBill),
		Inventory:    r.Inventory.Inventory(),
		Amount:       r.Amount,
		Status:       types.QuotationStatus(r.Status),
		Notes:        r.Notes,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuotationsQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type QuotationList struct {
	Items []db.Quotation `json:"items"`
	Total int64          `json:"total"`
}

type QuotationHandler struct {
	quotations *service.QuotationService
	pdfOptions utils.PDFOptions
}

func NewQuotationHandler(quotations *service.QuotationService, pdfOptions utils.PDFOptions) *QuotationHandler {
	return &QuotationHandler{quotations: quotations, pdfOptions: pdfOptions}
}

func (h *QuotationHandler) List(c *gin.Context) {
	var query ListQuotationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "invalid query parameters", err)
		return
	}
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = 20
	}

	items, total, err := h.quotations.List(db.QuotationFilter{
		Status: query.Status,
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		respondError(c, "failed to list quotations", err)
		return
	}
	respondOK(c, http.StatusOK, "quotations listed", QuotationList{Items: items, Total: total})
}

func (h *QuotationHandler) Create(c *gin.Context) {
	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	q, err := h.quotations.Create(req.toInput())
	if err != nil {
		respondError(c, "failed to create quotation", err)
		return
	}
	respondOK(c, http.StatusCreated, "quotation created", q)
}

func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	q, err := h.quotations.Get(id)
	if err != nil {
		respondError(c, "quotation not found", err)
		return
	}
	respondOK(c, http.StatusOK, "quotation found", q)
}

func (h *QuotationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	q, err := h.quotations.Update(id, req.toInput())
	if err != nil {
		respondError(c, "failed to update quotation", err)
		return
	}
	respondOK(c, http.StatusOK, "quotation updated", q)
}

func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err)
		return
	}
	q, err := h.quotations.SetStatus(id, types.QuotationStatus(req.Status))
	if err != nil {
		respondError(c, "failed to update status", err)
		return
	}
	respondOK(c, http.StatusOK, "status updated", q)
}

func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.quotations.Delete(id); err != nil {
		respondError(c, "failed to delete quotation", err)
		return
	}
	respondOK(c, http.StatusOK, "quotation deleted", nil)
}

// PDF streams the printable quotation.
func (h *QuotationHandler) PDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	q, err := h.quotations.Get(id)
	if err != nil {
		respondError(c, "quotation not found", err)
		return
	}

	pdf, err := utils.GenerateQuotationPDF(*q, h.pdfOptions)
	if err != nil {
		respondError(c, "failed to generate PDF", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation_%s.pdf", q.Reference))
	if err := pdf.Output(c.Writer); err != nil {
		respondError(c, "failed to write PDF", err)
	}
}

// Export downloads every quotation matching the status/search filter as xlsx.
func (h *QuotationHandler) Export(c *gin.Context) {
	var query ListQuotationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "invalid query parameters", err)
		return
	}
	items, _, err := h.quotations.List(db.QuotationFilter{Status: query.Status, Search: query.Search})
	if err != nil {
		respondError(c, "failed to list quotations", err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=quotations.xlsx")
	c.Header("X-Total-Count", strconv.Itoa(len(items)))
	if err := utils.ExportQuotations(c.Writer, items); err != nil {
		respondError(c, "failed to export quotations", err)
	}
}
