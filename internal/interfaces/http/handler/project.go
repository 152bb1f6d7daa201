package handler

import (
	"github.com/erp/erp-system/internal/application/project"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	BaseHandler
	projectService *project.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *project.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    BaseHandler{logger: logger},
		projectService: projectService,
	}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        search query string false "Search name or description"
// @Param        status query string false "Project status"
// @Success      200 {object} dto.Response{data=[]ProjectResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var q ProjectListQuery
	if !h.bindQuery(c, &q) {
		return
	}
	projects, err := h.projectService.List(c.Request.Context(), project.ProjectListFilter{
		Search: q.Search,
		Status: q.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	h.List(c, out, len(out))
}

// GetProject godoc
// @Summary      Get project
// @Description  Project with its contracts and gross margin
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response{data=ProjectDetailResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProjectDetailResponse(*detail))
}

// CreateProject godoc
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body ProjectRequest true "Project"
// @Success      201 {object} dto.Response{data=ProjectResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.projectService.Create(c.Request.Context(), req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toProjectResponse(*p))
}

// UpdateProject godoc
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body ProjectRequest true "Project"
// @Success      200 {object} dto.Response{data=ProjectResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req ProjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.projectService.Update(c.Request.Context(), id, req.toApp())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProjectResponse(*p))
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Delete a project. Its contracts are kept and detached.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "项目删除成功")
}
