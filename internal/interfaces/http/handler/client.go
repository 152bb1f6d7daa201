package handler

import (
	"github.com/erp/erp-system/internal/application/partner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler handles client (customer and supplier) HTTP requests
type ClientHandler struct {
	BaseHandler
	clientService *partner.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partner.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   BaseHandler{logger: logger},
		clientService: clientService,
	}
}

// ListClients godoc
// @Summary      List clients
// @Description  List the customers and suppliers the caller may see
// @Tags         clients
// @Produce      json
// @Param        search     query string false "Search name, contact, phone or email"
// @Param        clientType query string false "CUSTOMER or SUPPLIER"
// @Success      200 {object} dto.Response{data=[]ClientResponse,meta=dto.Meta}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var q ClientListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	clients, err := h.clientService.List(c.Request.Context(), caller(c), partner.ClientListFilter{
		Search:     q.Search,
		ClientType: q.ClientType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		out[i] = toClientResponse(cl)
	}
	h.List(c, out, len(out))
}

// GetClient godoc
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} dto.Response{data=ClientResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	client, err := h.clientService.Get(c.Request.Context(), caller(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toClientResponse(*client))
}

// CreateClient godoc
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body ClientRequest true "Client"
// @Success      201 {object} dto.Response{data=ClientResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.clientService.Create(c.Request.Context(), caller(c), req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toClientResponse(*client))
}

// UpdateClient godoc
// @Summary      Update client
// @Description  Replace every editable field of a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Param        request body ClientRequest true "Client"
// @Success      200 {object} dto.Response{data=ClientResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req ClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.clientService.Update(c.Request.Context(), caller(c), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toClientResponse(*client))
}

// DeleteClient godoc
// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.clientService.Delete(c.Request.Context(), caller(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "客户删除成功")
}
