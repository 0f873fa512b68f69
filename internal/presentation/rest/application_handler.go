package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/application/usecase"
)

// ApplicationHandler exposes the loan application lifecycle over HTTP.
type ApplicationHandler struct {
	submit      *usecase.SubmitApplicationUseCase
	get         *usecase.GetApplicationUseCase
	creditCheck *usecase.PerformCreditCheckUseCase
	underwrite  *usecase.RunUnderwritingUseCase
	upload      *usecase.UploadDocumentUseCase
	fund        *usecase.FundApplicationUseCase
	logger      *slog.Logger
}

// NewApplicationHandler creates the handler.
func NewApplicationHandler(
	submit *usecase.SubmitApplicationUseCase,
	get *usecase.GetApplicationUseCase,
	creditCheck *usecase.PerformCreditCheckUseCase,
	underwrite *usecase.RunUnderwritingUseCase,
	upload *usecase.UploadDocumentUseCase,
	fund *usecase.FundApplicationUseCase,
	logger *slog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		submit:      submit,
		get:         get,
		creditCheck: creditCheck,
		underwrite:  underwrite,
		upload:      upload,
		fund:        fund,
		logger:      logger,
	}
}

// RegisterRoutes attaches application routes to the API group.
func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/applications", h.submitApplication)
	api.GET("/applications/:id", h.getApplication)
	api.GET("/applications/:id/schedule", h.getSchedule)
	api.POST("/applications/:id/credit-check", h.runCreditCheck)
	api.POST("/applications/:id/underwriting", h.runUnderwriting)
	api.GET("/applications/:id/decision", h.getDecision)
	api.POST("/applications/:id/fund", h.fundApplication)
	api.POST("/documents", h.uploadDocument)
	api.GET("/businesses/:id/applications", h.listByBusiness)
}

func (h *ApplicationHandler) submitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.submit.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) getApplication(c *gin.Context) {
	resp, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) getSchedule(c *gin.Context) {
	resp, err := h.get.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": resp})
}

func (h *ApplicationHandler) runCreditCheck(c *gin.Context) {
	resp, err := h.creditCheck.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) runUnderwriting(c *gin.Context) {
	resp, err := h.underwrite.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) getDecision(c *gin.Context) {
	resp, err := h.underwrite.Decision(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) fundApplication(c *gin.Context) {
	resp, err := h.fund.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) uploadDocument(c *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.upload.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) listByBusiness(c *gin.Context) {
	resp, err := h.get.ListByBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": resp})
}
