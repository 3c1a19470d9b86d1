package timetracking

import (
	"errors"
	"io"
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
	l := zap.L().Named("timetracking.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timetracking.handler")
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

// bindOptionalJSON accepts an empty body for endpoints whose fields are all
// optional.
func bindOptionalJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.logger.Warn("clock in validation failed", zap.Error(err))
		writeBindError(c, err)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartActivity(c *gin.Context) {
	var req StartActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.StartActivity(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StopActivity(c *gin.Context) {
	resp, err := h.service.StopActivity(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) StartBreak(c *gin.Context) {
	var req StartBreakRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.StartBreak(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EndBreak(c *gin.Context) {
	resp, err := h.service.EndBreak(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TodaySummary(c *gin.Context) {
	resp, err := h.service.GetTodaySummary(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) WeeklyReport(c *gin.Context) {
	var q WeeklyReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetWeeklyReport(c.Request.Context(), c.GetString("user_id"), q.StartDate, q.EndDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamAttendance(c *gin.Context) {
	var q TeamAttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetTeamAttendance(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), q.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
