package handler

import (
	"net/http"

	"github.com/erp/erp-system/internal/application/finance"
	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	BaseHandler
	invoiceService *finance.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *finance.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    BaseHandler{logger: logger},
		invoiceService: invoiceService,
	}
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  List the invoice kinds the caller may see
// @Tags         invoices
// @Produce      json
// @Param        search          query string false "Search number, client, contract or project"
// @Param        status          query string false "UNISSUED or ISSUED"
// @Param        invoiceType     query string false "ISSUED or RECEIVED"
// @Param        clientId        query string false "Client ID" format(uuid)
// @Param        contractId      query string false "Contract ID" format(uuid)
// @Param        startDate       query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param        endDate         query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Param        invoiceDateFrom query string false "Alias of startDate"
// @Param        invoiceDateTo   query string false "Alias of endDate"
// @Success      200 {object} dto.Response{data=[]InvoiceResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q InvoiceListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	clientID, err := parseOptionalUUID(q.ClientID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "无效的客户ID")
		return
	}
	contractID, err := parseOptionalUUID(q.ContractID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "无效的合同ID")
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), caller(c), finance.InvoiceListFilter{
		Search:      q.Search,
		Status:      q.Status,
		InvoiceType: q.InvoiceType,
		ClientID:    clientID,
		ContractID:  contractID,
		InvoiceDate: q.invoiceDateRange(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = toInvoiceResponse(inv)
	}
	h.List(c, out, len(out))
}

// GetInvoice godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} dto.Response{data=InvoiceResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.Get(c.Request.Context(), caller(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toInvoiceResponse(*inv))
}

// NextInvoiceNumber godoc
// @Summary      Preview next invoice number
// @Description  The number is not reserved; a concurrent create may take it
// @Tags         invoices
// @Produce      json
// @Success      200 {object} dto.Response{data=NextNumberResponse}
// @Security     BearerAuth
// @Router       /invoices/next-number [get]
func (h *InvoiceHandler) NextInvoiceNumber(c *gin.Context) {
	next, err := h.invoiceService.NextNumber(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NextNumberResponse{Number: next.Number})
}

// CreateInvoice godoc
// @Summary      Create invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body InvoiceRequest true "Invoice"
// @Success      201 {object} dto.Response{data=InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	inv, err := h.invoiceService.Create(c.Request.Context(), caller(c), req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toInvoiceResponse(*inv))
}

// UpdateInvoice godoc
// @Summary      Update invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Param        request body InvoiceRequest true "Invoice"
// @Success      200 {object} dto.Response{data=InvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req InvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	inv, err := h.invoiceService.Update(c.Request.Context(), caller(c), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toInvoiceResponse(*inv))
}

// DeleteInvoice godoc
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), caller(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "发票删除成功")
}
