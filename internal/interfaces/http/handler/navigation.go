package handler

import (
	"github.com/erp/erp-system/internal/domain/navigation"
	"github.com/gin-gonic/gin"
)

// MenuItemResponse is a visible menu entry
type MenuItemResponse struct {
	Key      string             `json:"key"`
	Label    string             `json:"label"`
	Path     string             `json:"path,omitempty"`
	Children []MenuItemResponse `json:"children,omitempty"`
}

// NavigationResponse is the caller's menu and home-page sections
type NavigationResponse struct {
	Menu     []MenuItemResponse `json:"menu"`
	Sections []string           `json:"sections"`
}

func toMenuResponse(items []navigation.Item) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i, it := range items {
		out[i] = MenuItemResponse{Key: it.Key, Label: it.Label, Path: it.Path}
		if it.IsGroup() {
			out[i].Children = toMenuResponse(it.Children)
		}
	}
	return out
}

// NavigationHandler serves the permission-filtered menu
type NavigationHandler struct {
	BaseHandler
	menu []navigation.Item
}

// NewNavigationHandler creates a new NavigationHandler over the default menu
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{menu: navigation.DefaultMenu()}
}

// GetNavigation godoc
// @Summary      Navigation for the caller
// @Description  The menu entries and home-page sections the caller may open
// @Tags         navigation
// @Produce      json
// @Success      200 {object} dto.Response{data=NavigationResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /navigation [get]
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	g := caller(c)
	h.Success(c, NavigationResponse{
		Menu:     toMenuResponse(navigation.Filter(h.menu, g)),
		Sections: navigation.VisibleSections(g),
	})
}
