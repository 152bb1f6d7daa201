package handler

import (
	"net/http"

	"github.com/erp/erp-system/internal/application/contract"
	"github.com/erp/erp-system/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContractHandler handles contract HTTP requests
type ContractHandler struct {
	BaseHandler
	contractService *contract.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *contract.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		BaseHandler:     BaseHandler{logger: logger},
		contractService: contractService,
	}
}

// ListContracts godoc
// @Summary      List contracts
// @Description  List contracts visible to the caller. forInvoices and forPayments drop fully settled contracts and attach balances over all records; withSettlement attaches balances over finalized records.
// @Tags         contracts
// @Produce      json
// @Param        search         query string false "Search number, title, client or project name"
// @Param        status         query string false "UNSIGNED or SIGNED"
// @Param        contractType   query string false "SALES or PURCHASE"
// @Param        clientId       query string false "Client ID" format(uuid)
// @Param        projectId      query string false "Project ID" format(uuid)
// @Param        startDate      query string false "Start date lower bound (YYYY-MM-DD)"
// @Param        endDate        query string false "Start date upper bound (YYYY-MM-DD)"
// @Param        startDateFrom  query string false "Alias of startDate"
// @Param        startDateTo    query string false "Alias of endDate"
// @Param        forInvoices    query bool   false "Only contracts not fully invoiced"
// @Param        forPayments    query bool   false "Only contracts not fully paid"
// @Param        withSettlement query bool   false "Attach finalized balances"
// @Success      200 {object} dto.Response{data=[]ContractResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var q ContractListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	clientID, err := parseOptionalUUID(q.ClientID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "无效的客户ID")
		return
	}
	projectID, err := parseOptionalUUID(q.ProjectID)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, "无效的项目ID")
		return
	}

	contracts, err := h.contractService.List(c.Request.Context(), caller(c), contract.ContractListFilter{
		Search:         q.Search,
		Status:         q.Status,
		ContractType:   q.ContractType,
		ClientID:       clientID,
		ProjectID:      projectID,
		StartDate:      q.startDateRange(),
		ForInvoices:    q.ForInvoices,
		ForPayments:    q.ForPayments,
		WithSettlement: q.WithSettlement,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]ContractResponse, len(contracts))
	for i, ct := range contracts {
		out[i] = toContractResponse(ct)
	}
	h.List(c, out, len(out))
}

// GetContract godoc
// @Summary      Get contract
// @Description  Contract with client, project, invoices, payments and finalized balances
// @Tags         contracts
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response{data=ContractDetailResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.contractService.Get(c.Request.Context(), caller(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toContractDetailResponse(*detail))
}

// CreateContract godoc
// @Summary      Create contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body ContractRequest true "Contract"
// @Success      201 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req ContractRequest
	if !h.bindJSON(c, &req) {
		return
	}
	ct, err := h.contractService.Create(c.Request.Context(), caller(c), req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toContractResponse(*ct))
}

// UpdateContract godoc
// @Summary      Update contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body ContractRequest true "Contract"
// @Success      200 {object} dto.Response{data=ContractResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req ContractRequest
	if !h.bindJSON(c, &req) {
		return
	}
	ct, err := h.contractService.Update(c.Request.Context(), caller(c), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toContractResponse(*ct))
}

// DeleteContract godoc
// @Summary      Delete contract
// @Tags         contracts
// @Produce      json
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.contractService.Delete(c.Request.Context(), caller(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "合同删除成功")
}
