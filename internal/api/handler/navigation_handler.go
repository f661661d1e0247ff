package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NavigationHandler serves the front end's navigation structure. The list
// is static configuration; it never depends on the caller's identity.
type NavigationHandler struct {
	items []navItem
}

type navItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon,omitempty"`
}

type navigationResponse struct {
	Items []navItem `json:"items"`
}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{
		items: []navItem{
			{Label: "Dashboard", Path: "/", Icon: "home"},
			{Label: "Services", Path: "/services", Icon: "grid"},
			{Label: "Chat", Path: "/chat", Icon: "message"},
			{Label: "Settings", Path: "/settings", Icon: "settings"},
		},
	}
}

// List answers GET /api/navigation with a non-empty item list.
//
// @Summary      Navigation items
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, navigationResponse{Items: h.items})
}
