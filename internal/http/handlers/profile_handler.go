// README: Caller profile handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/http/middleware"
	"bettercommute/internal/modules/user"
	"bettercommute/internal/types"
)

type ProfileHandler struct {
	users *user.Service
}

func NewProfileHandler(svc *user.Service) *ProfileHandler {
	return &ProfileHandler{users: svc}
}

type updateProfileReq struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.users.Get(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid body")
		return
	}
	p, err := h.users.Update(c.Request.Context(), user.UpdateCommand{
		UID:    types.ID(middleware.CallerUID(c)),
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
	})
	if err != nil {
		writeProfileError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}
