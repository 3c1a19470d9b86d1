package dailyreport

import (
	"net/http"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dailyreport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailyreport.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func writeBindError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, apperror.CodeValidationError, mapped.Message, err.Error())
}

func (h *Handler) CreateHourly(c *gin.Context) {
	var req CreateHourlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create hourly report validation failed", zap.Error(err))
		writeBindError(c, err)
		return
	}

	resp, err := h.service.CreateHourly(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListHourly(c *gin.Context) {
	var q ListHourlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.ListHourly(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateDaily(c *gin.Context) {
	var req CreateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create daily report validation failed", zap.Error(err))
		writeBindError(c, err)
		return
	}

	resp, err := h.service.CreateDaily(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateDaily(c *gin.Context) {
	var req UpdateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.UpdateDaily(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListDaily(c *gin.Context) {
	var q ListDailyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.ListDaily(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
