package handler

import (
	"net/http"

	"github.com/erp/erp-system/internal/application/finance"
	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles receipt and expense HTTP requests
type PaymentHandler struct {
	BaseHandler
	paymentService *finance.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *finance.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    BaseHandler{logger: logger},
		paymentService: paymentService,
	}
}

// ListPayments godoc
// @Summary      List payments
// @Description  List the payment kinds the caller may see, newest payment date first
// @Tags         payments
// @Produce      json
// @Param        search          query string false "Search number, reference, client or contract"
// @Param        status          query string false "UNPAID or PAID"
// @Param        paymentType     query string false "RECEIPT or EXPENSE"
// @Param        clientId        query string false "Client ID" format(uuid)
// @Param        contractId      query string false "Contract ID" format(uuid)
// @Param        invoiceId       query string false "Invoice ID" format(uuid)
// @Param        startDate       query string false "Payment date lower bound (YYYY-MM-DD)"
// @Param        endDate         query string false "Payment date upper bound (YYYY-MM-DD)"
// @Param        paymentDateFrom query string false "Alias of startDate"
// @Param        paymentDateTo   query string false "Alias of endDate"
// @Success      200 {object} dto.Response{data=[]PaymentResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var q PaymentListQuery
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
	invoiceID, err := parseOptionalUUID(q.InvoiceID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "无效的发票ID")
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), caller(c), finance.PaymentListFilter{
		Search:      q.Search,
		Status:      q.Status,
		PaymentType: q.PaymentType,
		ClientID:    clientID,
		ContractID:  contractID,
		InvoiceID:   invoiceID,
		PaymentDate: q.paymentDateRange(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = toPaymentResponse(p)
	}
	h.List(c, out, len(out))
}

// GetPayment godoc
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.Response{data=PaymentResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	p, err := h.paymentService.Get(c.Request.Context(), caller(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPaymentResponse(*p))
}

// NextPaymentNumber godoc
// @Summary      Preview next payment number
// @Description  The number is not reserved; a concurrent create may take it
// @Tags         payments
// @Produce      json
// @Success      200 {object} dto.Response{data=NextNumberResponse}
// @Security     BearerAuth
// @Router       /payments/next-number [get]
func (h *PaymentHandler) NextPaymentNumber(c *gin.Context) {
	next, err := h.paymentService.NextNumber(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NextNumberResponse{Number: next.Number})
}

// CreatePayment godoc
// @Summary      Create payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment"
// @Success      201 {object} dto.Response{data=PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.paymentService.Create(c.Request.Context(), caller(c), req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPaymentResponse(*p))
}

// UpdatePayment godoc
// @Summary      Update payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Param        request body PaymentRequest true "Payment"
// @Success      200 {object} dto.Response{data=PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.paymentService.Update(c.Request.Context(), caller(c), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPaymentResponse(*p))
}

// DeletePayment godoc
// @Summary      Delete payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.paymentService.Delete(c.Request.Context(), caller(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "收付款记录删除成功")
}
