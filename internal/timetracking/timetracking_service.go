package timetracking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/events"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/apperror"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/contextutil"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/metrics"
	timetrackingerrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBreakType = "general"
	weeklyRangeDays  = 7
	maxReportDays    = 366
	teamLoadTimeout  = 10 * time.Second
)

//go:generate mockgen -source=timetracking_service.go -destination=mock/timetracking_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID string, req ClockRequest) (ClockInResponse, error)
	ClockOut(ctx context.Context, userID string, req ClockRequest) (ClockOutResponse, error)
	StartActivity(ctx context.Context, userID string, req StartActivityRequest) (StartActivityResponse, error)
	StopActivity(ctx context.Context, userID string) (StopActivityResponse, error)
	StartBreak(ctx context.Context, userID string, req StartBreakRequest) (StartBreakResponse, error)
	EndBreak(ctx context.Context, userID string) (EndBreakResponse, error)
	GetTodaySummary(ctx context.Context, userID string) (TodaySummaryResponse, error)
	GetWeeklyReport(ctx context.Context, userID, startDate, endDate string) ([]DailyAggregate, error)
	GetTeamAttendance(ctx context.Context, actorID, role, date string) ([]TeamAttendanceRow, error)
}

type Option func(*service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("timetracking.service")
		}
	}
}

func WithOutbox(outbox kafka.OutboxRepository) Option {
	return func(s *service) { s.outbox = outbox }
}

func WithPolicy(p OvertimePolicy) Option {
	return func(s *service) { s.policy = p }
}

// WithLocation sets the time zone that decides a session's work date.
func WithLocation(loc *time.Location) Option {
	return func(s *service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithCache(cache *TeamCache) Option {
	return func(s *service) { s.cache = cache }
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cache  *TeamCache
	sf     *singleflight.Group
	policy OvertimePolicy
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, opts ...Option) Service {
	s := &service{
		db:     db,
		repo:   repo,
		sf:     &singleflight.Group{},
		policy: DefaultPolicy(),
		loc:    time.UTC,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger: zap.L().Named("timetracking.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) workDate(t time.Time) string {
	return t.In(s.loc).Format(dateLayout)
}

// inUserTx runs fn in a transaction holding the user's advisory lock.
func (s *service) inUserTx(ctx context.Context, userID string, fn func(qtx Repository, tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockUser(ctx, userID); err != nil {
		return err
	}
	if err := fn(qtx, tx); err != nil {
		return err
	}
	return MapRepositoryError(tx.Commit())
}

func (s *service) observe(log *zap.Logger, op string, err error) {
	if err == nil {
		metrics.ObserveTransition(op, "ok")
		return
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		metrics.ObserveTransition(op, appErr.Code)
		log.Warn("attendance transition rejected", zap.String("operation", op), zap.String("reason", appErr.Message))
		return
	}
	metrics.ObserveTransition(op, apperror.CodeInternalError)
	log.Error("attendance transition failed", zap.String("operation", op), zap.Error(err))
}

func parseUserID(userID string) (uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, timetrackingerrors.ErrInvalidUserID
	}
	return uid, nil
}

func (s *service) ClockIn(ctx context.Context, userID string, req ClockRequest) (ClockInResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock in", zap.String("user_id", userID))

	uid, err := parseUserID(userID)
	if err != nil {
		return ClockInResponse{}, err
	}

	var sess *AttendanceSession
	err = s.inUserTx(ctx, userID, func(qtx Repository, tx *sql.Tx) error {
		open, err := qtx.FindOpenSession(ctx, userID)
		if err != nil {
			return err
		}
		if open != nil {
			return timetrackingerrors.ErrAlreadyClockedIn
		}

		now := s.now()
		sess = &AttendanceSession{
			ID:                  uuid.New(),
			UserID:              uid,
			WorkDate:            s.workDate(now),
			ClockInTime:         now,
			ClockInLatitude:     req.Latitude,
			ClockInLongitude:    req.Longitude,
			ClockInLocationName: req.LocationName,
			Status:              StatusClockedIn,
		}
		if err := qtx.CreateSession(ctx, sess); err != nil {
			return MapRepositoryError(err)
		}
		return s.enqueueEvent(ctx, tx, events.AttendanceClockedIn, sess)
	})
	s.observe(log, "clock_in", err)
	if err != nil {
		return ClockInResponse{}, err
	}

	log.Info("clocked in", zap.String("session_id", sess.ID.String()), zap.String("work_date", sess.WorkDate))
	return ClockInResponse{
		SessionID:   sess.ID.String(),
		WorkDate:    sess.WorkDate,
		ClockInTime: sess.ClockInTime.Format(time.RFC3339),
		Location: LocationResponse{
			Latitude:  sess.ClockInLatitude,
			Longitude: sess.ClockInLongitude,
			Name:      sess.ClockInLocationName,
		},
	}, nil
}

// ClockOut closes the user's open session. A session still on break has the
// break closed at the same instant, and any running activity is stopped.
func (s *service) ClockOut(ctx context.Context, userID string, req ClockRequest) (ClockOutResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock out", zap.String("user_id", userID))

	if _, err := parseUserID(userID); err != nil {
		return ClockOutResponse{}, err
	}

	var (
		sess *AttendanceSession
		day  DayTotals
	)
	err := s.inUserTx(ctx, userID, func(qtx Repository, tx *sql.Tx) error {
		var err error
		sess, err = qtx.FindOpenSession(ctx, userID)
		if err != nil {
			return err
		}
		if sess == nil {
			return timetrackingerrors.ErrNoActiveSession
		}

		now := s.now()
		if sess.Status == StatusOnBreak {
			br, err := qtx.FindOpenBreak(ctx, sess.ID.String())
			if err != nil {
				return err
			}
			if br != nil {
				minutes := closeBreak(br, now)
				if err := qtx.UpdateBreak(ctx, br); err != nil {
					return err
				}
				sess.BreakMinutes += minutes
			}
		}

		act, err := qtx.FindOpenActivity(ctx, userID)
		if err != nil {
			return err
		}
		if act != nil {
			closeActivity(act, now)
			if err := qtx.UpdateActivity(ctx, act); err != nil {
				return err
			}
		}

		totals := ComputeTotals(sess.ClockInTime, now, s.policy)
		sess.ClockOutTime = &now
		sess.ClockOutLatitude = req.Latitude
		sess.ClockOutLongitude = req.Longitude
		sess.ClockOutLocationName = req.LocationName
		sess.TotalHours = totals.TotalHours
		sess.OvertimeHours = totals.OvertimeHours
		sess.Status = StatusClockedOut

		if err := qtx.UpdateSession(ctx, sess); err != nil {
			return err
		}
		if err := s.enqueueEvent(ctx, tx, events.AttendanceClockedOut, sess); err != nil {
			return err
		}

		day, err = s.dayTotals(ctx, qtx, userID, s.workDate(now))
		return err
	})
	s.observe(log, "clock_out", err)
	if err != nil {
		return ClockOutResponse{}, err
	}

	log.Info("clocked out",
		zap.String("session_id", sess.ID.String()),
		zap.Float64("total_hours", sess.TotalHours),
		zap.Float64("overtime_hours", sess.OvertimeHours),
	)
	return ClockOutResponse{
		SessionID:     sess.ID.String(),
		ClockOutTime:  sess.ClockOutTime.Format(time.RFC3339),
		TotalHours:    sess.TotalHours,
		OvertimeHours: sess.OvertimeHours,
		BreakMinutes:  sess.BreakMinutes,
		TodaySummary:  day,
	}, nil
}

func (s *service) dayTotals(ctx context.Context, repo Repository, userID, date string) (DayTotals, error) {
	sessions, err := repo.FindSessionsByDateRange(ctx, userID, date, date)
	if err != nil {
		return DayTotals{}, err
	}

	day := DayTotals{Date: date, SessionCount: len(sessions)}
	for _, sess := range sessions {
		day.TotalHours += sess.TotalHours
		day.OvertimeHours += sess.OvertimeHours
		day.BreakMinutes += sess.BreakMinutes
	}
	day.TotalHours = round2(day.TotalHours)
	day.OvertimeHours = round2(day.OvertimeHours)
	return day, nil
}

// StartActivity stops any running activity of the user and starts a new one.
// The stopped activity is reported back as superseded.
func (s *service) StartActivity(ctx context.Context, userID string, req StartActivityRequest) (StartActivityResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("start activity", zap.String("user_id", userID), zap.String("activity_type", req.ActivityType))

	uid, err := parseUserID(userID)
	if err != nil {
		return StartActivityResponse{}, err
	}

	var (
		act        *ActivitySession
		superseded *SupersededActivity
	)
	err = s.inUserTx(ctx, userID, func(qtx Repository, _ *sql.Tx) error {
		sess, err := qtx.FindOpenSession(ctx, userID)
		if err != nil {
			return err
		}
		if sess == nil {
			return timetrackingerrors.ErrNotClockedIn
		}

		now := s.now()
		prev, err := qtx.FindOpenActivity(ctx, userID)
		if err != nil {
			return err
		}
		if prev != nil {
			minutes := closeActivity(prev, now)
			if err := qtx.UpdateActivity(ctx, prev); err != nil {
				return err
			}
			superseded = &SupersededActivity{
				PreviousID:      prev.ID.String(),
				EndTime:         now.Format(time.RFC3339),
				DurationMinutes: minutes,
			}
		}

		act = &ActivitySession{
			ID:                  uuid.New(),
			AttendanceSessionID: sess.ID,
			UserID:              uid,
			ProjectID:           req.ProjectID,
			ActivityType:        req.ActivityType,
			TaskDescription:     req.TaskDescription,
			StartTime:           now,
		}
		return MapRepositoryError(qtx.CreateActivity(ctx, act))
	})
	s.observe(log, "start_activity", err)
	if err != nil {
		return StartActivityResponse{}, err
	}

	if superseded != nil {
		log.Info("activity superseded", zap.String("previous_id", superseded.PreviousID), zap.Int("duration_minutes", superseded.DurationMinutes))
	}
	log.Info("activity started", zap.String("activity_id", act.ID.String()))
	return StartActivityResponse{
		ActivityID: act.ID.String(),
		StartTime:  act.StartTime.Format(time.RFC3339),
		Superseded: superseded,
	}, nil
}

func (s *service) StopActivity(ctx context.Context, userID string) (StopActivityResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := parseUserID(userID); err != nil {
		return StopActivityResponse{}, err
	}

	var act *ActivitySession
	err := s.inUserTx(ctx, userID, func(qtx Repository, _ *sql.Tx) error {
		var err error
		act, err = qtx.FindOpenActivity(ctx, userID)
		if err != nil {
			return err
		}
		if act == nil {
			return timetrackingerrors.ErrNoActiveActivity
		}
		closeActivity(act, s.now())
		return qtx.UpdateActivity(ctx, act)
	})
	s.observe(log, "stop_activity", err)
	if err != nil {
		return StopActivityResponse{}, err
	}

	log.Info("activity stopped", zap.String("activity_id", act.ID.String()), zap.Int("duration_minutes", *act.DurationMinutes))
	return StopActivityResponse{
		ActivityID:      act.ID.String(),
		DurationMinutes: *act.DurationMinutes,
		StartTime:       act.StartTime.Format(time.RFC3339),
		EndTime:         act.EndTime.Format(time.RFC3339),
	}, nil
}

func (s *service) StartBreak(ctx context.Context, userID string, req StartBreakRequest) (StartBreakResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := parseUserID(userID)
	if err != nil {
		return StartBreakResponse{}, err
	}

	breakType := req.BreakType
	if breakType == "" {
		breakType = defaultBreakType
	}

	var br *BreakRecord
	err = s.inUserTx(ctx, userID, func(qtx Repository, tx *sql.Tx) error {
		sess, err := qtx.FindOpenSession(ctx, userID)
		if err != nil {
			return err
		}
		if sess == nil {
			return timetrackingerrors.ErrNotClockedIn
		}
		if sess.Status == StatusOnBreak {
			return timetrackingerrors.ErrAlreadyOnBreak
		}

		br = &BreakRecord{
			ID:                  uuid.New(),
			AttendanceSessionID: sess.ID,
			UserID:              uid,
			BreakType:           breakType,
			StartTime:           s.now(),
			Notes:               req.Notes,
		}
		if err := qtx.CreateBreak(ctx, br); err != nil {
			return MapRepositoryError(err)
		}

		sess.Status = StatusOnBreak
		if err := qtx.UpdateSession(ctx, sess); err != nil {
			return err
		}
		return s.enqueueEvent(ctx, tx, events.AttendanceBreakStart, sess)
	})
	s.observe(log, "start_break", err)
	if err != nil {
		return StartBreakResponse{}, err
	}

	log.Info("break started", zap.String("break_id", br.ID.String()), zap.String("break_type", br.BreakType))
	return StartBreakResponse{
		BreakID:   br.ID.String(),
		StartTime: br.StartTime.Format(time.RFC3339),
		BreakType: br.BreakType,
	}, nil
}

func (s *service) EndBreak(ctx context.Context, userID string) (EndBreakResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := parseUserID(userID); err != nil {
		return EndBreakResponse{}, err
	}

	var br *BreakRecord
	err := s.inUserTx(ctx, userID, func(qtx Repository, tx *sql.Tx) error {
		sess, err := qtx.FindOpenSession(ctx, userID)
		if err != nil {
			return err
		}
		if sess == nil || sess.Status != StatusOnBreak {
			return timetrackingerrors.ErrNoActiveBreak
		}

		br, err = qtx.FindOpenBreak(ctx, sess.ID.String())
		if err != nil {
			return err
		}
		if br == nil {
			return timetrackingerrors.ErrNoActiveBreak
		}

		minutes := closeBreak(br, s.now())
		if err := qtx.UpdateBreak(ctx, br); err != nil {
			return err
		}

		sess.BreakMinutes += minutes
		sess.Status = StatusClockedIn
		if err := qtx.UpdateSession(ctx, sess); err != nil {
			return err
		}
		return s.enqueueEvent(ctx, tx, events.AttendanceBreakEnd, sess)
	})
	s.observe(log, "end_break", err)
	if err != nil {
		return EndBreakResponse{}, err
	}

	log.Info("break ended", zap.String("break_id", br.ID.String()), zap.Int("duration_minutes", *br.DurationMinutes))
	return EndBreakResponse{
		BreakID:         br.ID.String(),
		DurationMinutes: *br.DurationMinutes,
		StartTime:       br.StartTime.Format(time.RFC3339),
		EndTime:         br.EndTime.Format(time.RFC3339),
	}, nil
}

func closeActivity(a *ActivitySession, at time.Time) int {
	minutes := DurationMinutes(a.StartTime, at)
	a.EndTime = &at
	a.DurationMinutes = &minutes
	return minutes
}

func closeBreak(b *BreakRecord, at time.Time) int {
	minutes := DurationMinutes(b.StartTime, at)
	b.EndTime = &at
	b.DurationMinutes = &minutes
	return minutes
}

// GetTodaySummary covers the sessions of today's work date plus a session
// still open from an earlier date.
func (s *service) GetTodaySummary(ctx context.Context, userID string) (TodaySummaryResponse, error) {
	if _, err := parseUserID(userID); err != nil {
		return TodaySummaryResponse{}, err
	}

	today := s.workDate(s.now())
	sessions, err := s.repo.FindSessionsByDateRange(ctx, userID, today, today)
	if err != nil {
		return TodaySummaryResponse{}, err
	}

	open, err := s.repo.FindOpenSession(ctx, userID)
	if err != nil {
		return TodaySummaryResponse{}, err
	}
	if open != nil && open.WorkDate != today {
		sessions = append([]AttendanceSession{*open}, sessions...)
	}

	resp := TodaySummaryResponse{
		Activities: []ActivityResponse{},
		Breaks:     []BreakResponse{},
	}
	if len(sessions) == 0 {
		return resp, nil
	}

	ids := sessionIDs(sessions)
	activities, err := s.repo.FindActivitiesBySessions(ctx, ids)
	if err != nil {
		return TodaySummaryResponse{}, err
	}
	breaks, err := s.repo.FindBreaksBySessions(ctx, ids)
	if err != nil {
		return TodaySummaryResponse{}, err
	}

	summary := &SessionSummary{
		Date:          today,
		SessionCount:  len(sessions),
		FirstClockIn:  sessions[0].ClockInTime.Format(time.RFC3339),
		Status:        sessions[len(sessions)-1].Status,
		ActivityCount: len(activities),
		BreakCount:    len(breaks),
	}
	for _, sess := range sessions {
		if sess.IsOpen() {
			id := sess.ID.String()
			summary.CurrentSessionID = &id
			summary.Status = sess.Status
		}
		if sess.ClockOutTime != nil {
			v := sess.ClockOutTime.Format(time.RFC3339)
			summary.LastClockOut = &v
		}
		summary.TotalHours += sess.TotalHours
		summary.OvertimeHours += sess.OvertimeHours
		summary.BreakMinutes += sess.BreakMinutes
	}
	summary.TotalHours = round2(summary.TotalHours)
	summary.OvertimeHours = round2(summary.OvertimeHours)

	for _, a := range activities {
		if a.DurationMinutes != nil {
			summary.ActivityMinutes += *a.DurationMinutes
		}
		resp.Activities = append(resp.Activities, mapActivity(a))
	}
	for _, b := range breaks {
		resp.Breaks = append(resp.Breaks, mapBreak(b))
	}
	resp.Summary = summary
	return resp, nil
}

// GetWeeklyReport groups the user's sessions by work date. Missing dates
// default to the seven days ending today.
func (s *service) GetWeeklyReport(ctx context.Context, userID, startDate, endDate string) ([]DailyAggregate, error) {
	if _, err := parseUserID(userID); err != nil {
		return nil, err
	}

	from, to, err := s.reportRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.FindSessionsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return []DailyAggregate{}, nil
	}

	ids := sessionIDs(sessions)
	activities, err := s.repo.FindActivitiesBySessions(ctx, ids)
	if err != nil {
		return nil, err
	}
	breaks, err := s.repo.FindBreaksBySessions(ctx, ids)
	if err != nil {
		return nil, err
	}

	dateOf := make(map[uuid.UUID]string, len(sessions))
	index := make(map[string]int)
	days := make([]DailyAggregate, 0)
	for _, sess := range sessions {
		dateOf[sess.ID] = sess.WorkDate
		i, ok := index[sess.WorkDate]
		if !ok {
			days = append(days, DailyAggregate{Date: sess.WorkDate, DaysWorked: 1})
			i = len(days) - 1
			index[sess.WorkDate] = i
		}
		days[i].TotalHours += sess.TotalHours
		days[i].OvertimeHours += sess.OvertimeHours
		days[i].BreakMinutes += sess.BreakMinutes
	}
	for _, a := range activities {
		days[index[dateOf[a.AttendanceSessionID]]].ActivityCount++
	}
	for _, b := range breaks {
		days[index[dateOf[b.AttendanceSessionID]]].BreakCount++
	}
	for i := range days {
		days[i].TotalHours = round2(days[i].TotalHours)
		days[i].OvertimeHours = round2(days[i].OvertimeHours)
	}
	return days, nil
}

func (s *service) reportRange(startDate, endDate string) (string, string, error) {
	end, err := s.parseDateOr(endDate, s.now().In(s.loc))
	if err != nil {
		return "", "", err
	}
	start, err := s.parseDateOr(startDate, end.AddDate(0, 0, -(weeklyRangeDays - 1)))
	if err != nil {
		return "", "", err
	}
	if start.After(end) || end.Sub(start) > maxReportDays*24*time.Hour {
		return "", "", timetrackingerrors.ErrInvalidDateRange
	}
	return start.Format(dateLayout), end.Format(dateLayout), nil
}

func (s *service) parseDateOr(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		y, m, d := fallback.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, timetrackingerrors.ErrInvalidDate
	}
	return t, nil
}

// GetTeamAttendance lists every user's attendance on date. Managers see all
// rows; others see themselves and their direct reports.
func (s *service) GetTeamAttendance(ctx context.Context, actorID, role, date string) ([]TeamAttendanceRow, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if date == "" {
		date = s.workDate(s.now())
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, timetrackingerrors.ErrInvalidDate
	}

	rows, ok := s.cache.Get(ctx, date)
	if !ok {
		v, err, _ := s.sf.Do(TeamAttendanceKey(date), func() (interface{}, error) {
			// the result is shared by every waiting caller
			loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), teamLoadTimeout)
			defer cancel()

			sessions, err := s.repo.FindSessionsByWorkDate(loadCtx, date)
			if err != nil {
				return nil, err
			}
			built := buildTeamRows(sessions)
			if err := s.cache.Set(loadCtx, date, built); err != nil {
				log.Warn("cache team attendance failed", zap.String("date", date), zap.Error(err))
			}
			return built, nil
		})
		if err != nil {
			return nil, err
		}
		rows = v.([]TeamAttendanceRow)
	}

	if role == rbac.RoleManager {
		return rows, nil
	}
	visible := make([]TeamAttendanceRow, 0, len(rows))
	for _, r := range rows {
		if r.UserID == actorID || (r.ManagerID != nil && *r.ManagerID == actorID) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

func buildTeamRows(sessions []AttendanceSession) []TeamAttendanceRow {
	index := make(map[uuid.UUID]int)
	rows := make([]TeamAttendanceRow, 0)
	for _, sess := range sessions {
		i, ok := index[sess.UserID]
		if !ok {
			row := TeamAttendanceRow{
				UserID:       sess.UserID.String(),
				FirstClockIn: sess.ClockInTime.Format(time.RFC3339),
			}
			if sess.User != nil {
				row.FullName = sess.User.FullName
				row.Role = sess.User.Role
				if sess.User.ManagerID != nil {
					m := sess.User.ManagerID.String()
					row.ManagerID = &m
				}
			}
			rows = append(rows, row)
			i = len(rows) - 1
			index[sess.UserID] = i
		}

		r := &rows[i]
		r.SessionCount++
		r.Status = sess.Status
		r.TotalHours = round2(r.TotalHours + sess.TotalHours)
		r.OvertimeHours = round2(r.OvertimeHours + sess.OvertimeHours)
		r.BreakMinutes += sess.BreakMinutes
		if sess.ClockOutTime != nil {
			v := sess.ClockOutTime.Format(time.RFC3339)
			r.LastClockOut = &v
		}
	}
	return rows
}

func sessionIDs(sessions []AttendanceSession) []string {
	ids := make([]string, len(sessions))
	for i, sess := range sessions {
		ids[i] = sess.ID.String()
	}
	return ids
}

func mapActivity(a ActivitySession) ActivityResponse {
	resp := ActivityResponse{
		ID:              a.ID.String(),
		SessionID:       a.AttendanceSessionID.String(),
		ProjectID:       a.ProjectID,
		ActivityType:    a.ActivityType,
		TaskDescription: a.TaskDescription,
		StartTime:       a.StartTime.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
	}
	if a.EndTime != nil {
		v := a.EndTime.Format(time.RFC3339)
		resp.EndTime = &v
	}
	return resp
}

func mapBreak(b BreakRecord) BreakResponse {
	resp := BreakResponse{
		ID:              b.ID.String(),
		SessionID:       b.AttendanceSessionID.String(),
		BreakType:       b.BreakType,
		StartTime:       b.StartTime.Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
	}
	if b.EndTime != nil {
		v := b.EndTime.Format(time.RFC3339)
		resp.EndTime = &v
	}
	return resp
}
