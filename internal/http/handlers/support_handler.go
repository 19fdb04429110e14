// README: FAQ and issue reporting handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bettercommute/internal/http/middleware"
	"bettercommute/internal/modules/support"
	"bettercommute/internal/types"
)

type SupportHandler struct {
	support *support.Service
}

func NewSupportHandler(svc *support.Service) *SupportHandler {
	return &SupportHandler{support: svc}
}

type reportIssueReq struct {
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

func (h *SupportHandler) FAQs(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"faqs": h.support.FAQs()})
}

func (h *SupportHandler) ReportIssue(c *gin.Context) {
	var req reportIssueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid body")
		return
	}
	id, err := h.support.ReportIssue(c.Request.Context(), support.ReportCommand{
		UserID:      types.ID(middleware.CallerUID(c)),
		Description: req.Description,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		writeSupportError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"issue_id": id})
}
