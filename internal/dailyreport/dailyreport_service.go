package dailyreport

import (
	"context"
	"strings"
	"time"

	dailyreporterrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout       = "2006-01-02"
	defaultListDays  = 30
	maxListRangeDays = 366
)

//go:generate mockgen -source=dailyreport_service.go -destination=mock/dailyreport_service_mock.go -package=mock
type Service interface {
	CreateHourly(ctx context.Context, actorID string, req CreateHourlyRequest) (HourlyReportResponse, error)
	ListHourly(ctx context.Context, actorID, role string, q ListHourlyQuery) ([]HourlyReportResponse, error)
	CreateDaily(ctx context.Context, actorID string, req CreateDailyRequest) (DailyReportResponse, error)
	UpdateDaily(ctx context.Context, actorID, id string, req UpdateDailyRequest) (DailyReportResponse, error)
	ListDaily(ctx context.Context, actorID, role string, q ListDailyQuery) ([]DailyReportResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailyreport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailyreport.service")
	}
	return &service{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) CreateHourly(ctx context.Context, actorID string, req CreateHourlyRequest) (HourlyReportResponse, error) {
	userUUID, err := uuid.Parse(actorID)
	if err != nil {
		return HourlyReportResponse{}, dailyreporterrors.ErrInvalidUserID
	}
	if _, err := time.Parse(dateLayout, req.ReportDate); err != nil {
		return HourlyReportResponse{}, dailyreporterrors.ErrInvalidDate
	}

	rep := &HourlyReport{
		ID:         uuid.New(),
		UserID:     userUUID,
		ReportDate: req.ReportDate,
		HourSlot:   req.HourSlot,
		ProjectID:  req.ProjectID,
		Activity:   strings.TrimSpace(req.Activity),
		Target:     strings.TrimSpace(req.Target),
		Achieved:   strings.TrimSpace(req.Achieved),
		Notes:      req.Notes,
	}
	if err := s.repo.CreateHourly(ctx, rep); err != nil {
		s.logger.Warn("create hourly report failed",
			zap.String("user_id", actorID),
			zap.String("report_date", req.ReportDate),
			zap.String("hour_slot", req.HourSlot),
			zap.Error(err),
		)
		return HourlyReportResponse{}, err
	}

	s.logger.Info("hourly report created",
		zap.String("report_id", rep.ID.String()),
		zap.String("user_id", actorID),
		zap.String("hour_slot", rep.HourSlot),
	)
	return toHourlyResponse(*rep), nil
}

func (s *service) ListHourly(ctx context.Context, actorID, role string, q ListHourlyQuery) ([]HourlyReportResponse, error) {
	userID, err := resolveSubject(actorID, role, q.UserID)
	if err != nil {
		return nil, err
	}
	date := q.Date
	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, dailyreporterrors.ErrInvalidDate
	}

	reports, err := s.repo.FindHourly(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	out := make([]HourlyReportResponse, len(reports))
	for i, r := range reports {
		out[i] = toHourlyResponse(r)
	}
	return out, nil
}

func (s *service) CreateDaily(ctx context.Context, actorID string, req CreateDailyRequest) (DailyReportResponse, error) {
	userUUID, err := uuid.Parse(actorID)
	if err != nil {
		return DailyReportResponse{}, dailyreporterrors.ErrInvalidUserID
	}
	if _, err := time.Parse(dateLayout, req.ReportDate); err != nil {
		return DailyReportResponse{}, dailyreporterrors.ErrInvalidDate
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	rep := &DailyTargetReport{
		ID:           uuid.New(),
		UserID:       userUUID,
		ReportDate:   req.ReportDate,
		ProjectID:    strings.TrimSpace(req.ProjectID),
		CustomerName: req.CustomerName,
		Location:     req.Location,
		DailyTarget:  strings.TrimSpace(req.DailyTarget),
		Achieved:     strings.TrimSpace(req.Achieved),
		Status:       status,
		Remarks:      req.Remarks,
	}
	if err := s.repo.CreateDaily(ctx, rep); err != nil {
		s.logger.Warn("create daily report failed",
			zap.String("user_id", actorID),
			zap.String("report_date", req.ReportDate),
			zap.String("project_id", rep.ProjectID),
			zap.Error(err),
		)
		return DailyReportResponse{}, err
	}

	s.logger.Info("daily report created", zap.String("report_id", rep.ID.String()), zap.String("user_id", actorID))
	return toDailyResponse(*rep), nil
}

func (s *service) UpdateDaily(ctx context.Context, actorID, id string, req UpdateDailyRequest) (DailyReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DailyReportResponse{}, dailyreporterrors.ErrReportNotFound
	}
	rep, err := s.repo.FindDailyByID(ctx, id)
	if err != nil {
		return DailyReportResponse{}, err
	}
	if rep.UserID.String() != actorID {
		return DailyReportResponse{}, dailyreporterrors.ErrNotReportOwner
	}

	if req.CustomerName != nil {
		rep.CustomerName = req.CustomerName
	}
	if req.Location != nil {
		rep.Location = req.Location
	}
	if req.DailyTarget != nil {
		rep.DailyTarget = strings.TrimSpace(*req.DailyTarget)
	}
	if req.Achieved != nil {
		rep.Achieved = strings.TrimSpace(*req.Achieved)
	}
	if req.Status != nil {
		rep.Status = *req.Status
	}
	if req.Remarks != nil {
		rep.Remarks = req.Remarks
	}

	if err := s.repo.UpdateDaily(ctx, rep); err != nil {
		s.logger.Error("update daily report failed", zap.String("report_id", id), zap.Error(err))
		return DailyReportResponse{}, err
	}
	return toDailyResponse(*rep), nil
}

// ListDaily defaults to the last 30 days ending today.
func (s *service) ListDaily(ctx context.Context, actorID, role string, q ListDailyQuery) ([]DailyReportResponse, error) {
	userID, err := resolveSubject(actorID, role, q.UserID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	to := today
	if q.To != "" {
		if to, err = time.Parse(dateLayout, q.To); err != nil {
			return nil, dailyreporterrors.ErrInvalidDate
		}
	}
	from := to.AddDate(0, 0, -(defaultListDays - 1))
	if q.From != "" {
		if from, err = time.Parse(dateLayout, q.From); err != nil {
			return nil, dailyreporterrors.ErrInvalidDate
		}
	}
	fromDay, toDay := from.Format(dateLayout), to.Format(dateLayout)
	if fromDay > toDay || to.Sub(from) > maxListRangeDays*24*time.Hour {
		return nil, dailyreporterrors.ErrInvalidDateRange
	}

	reports, err := s.repo.FindDaily(ctx, userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	out := make([]DailyReportResponse, len(reports))
	for i, r := range reports {
		out[i] = toDailyResponse(r)
	}
	return out, nil
}

// resolveSubject returns whose reports are being read. Only team leaders and
// managers may name someone other than themselves.
func resolveSubject(actorID, role, requested string) (string, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return "", dailyreporterrors.ErrInvalidUserID
	}
	if requested == "" || requested == actorID {
		return actorID, nil
	}
	if role != rbac.RoleTeamLeader && role != rbac.RoleManager {
		return "", dailyreporterrors.ErrCannotViewOthers
	}
	if _, err := uuid.Parse(requested); err != nil {
		return "", dailyreporterrors.ErrInvalidUserID
	}
	return requested, nil
}

func toHourlyResponse(r HourlyReport) HourlyReportResponse {
	return HourlyReportResponse{
		ID:         r.ID.String(),
		UserID:     r.UserID.String(),
		ReportDate: r.ReportDate,
		HourSlot:   r.HourSlot,
		ProjectID:  r.ProjectID,
		Activity:   r.Activity,
		Target:     r.Target,
		Achieved:   r.Achieved,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func toDailyResponse(r DailyTargetReport) DailyReportResponse {
	return DailyReportResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		ReportDate:   r.ReportDate,
		ProjectID:    r.ProjectID,
		CustomerName: r.CustomerName,
		Location:     r.Location,
		DailyTarget:  r.DailyTarget,
		Achieved:     r.Achieved,
		Status:       r.Status,
		Remarks:      r.Remarks,
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
