package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	leaveerrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/leave/errors"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"

	referenceCounterType = "LEAVE"
	dateLayout           = "2006-01-02"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID, role string, filter ListLeavesFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actorID, role, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counters counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counters: counters,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	userUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, actorID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("user_id", actorID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	year := s.now().Year()
	seq, err := s.counters.WithTx(tx).GetNextValue(ctx, strconv.Itoa(year), referenceCounterType)
	if err != nil {
		s.logger.Error("apply leave reference number failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:          uuid.New(),
		ReferenceNo: fmt.Sprintf("LV-%d-%06d", year, seq),
		UserID:      userUUID,
		LeaveType:   req.LeaveType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalDays:   int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("reference_no", l.ReferenceNo),
		zap.String("user_id", actorID),
	)
	return mapToResponse(*l), nil
}

// GetAll returns the caller's own leaves, or everyone's for reviewers.
func (s *service) GetAll(ctx context.Context, actorID, role string, filter ListLeavesFilter) ([]LeaveResponse, error) {
	if !canReview(role) {
		filter.UserID = actorID
	}
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actorID, role, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	// other users' leaves are indistinguishable from missing ones
	if !canReview(role) && l.UserID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id, reason string) (LeaveResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.transition(ctx, actorID, id, StatusRejected, &reason)
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transition(ctx, actorID, id, StatusCancelled, nil)
}

func (s *service) transition(ctx context.Context, actorID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.Status != StatusPending {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	isOwner := l.UserID == actorUUID
	switch targetStatus {
	case StatusCancelled:
		if !isOwner {
			return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
		}
	default:
		if isOwner {
			return LeaveResponse{}, leaveerrors.ErrCannotReviewOwnLeave
		}
		now := s.now()
		l.ReviewedBy = &actorUUID
		l.ReviewedAt = &now
		l.RejectionReason = rejectionReason
	}
	l.Status = targetStatus

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

func canReview(role string) bool {
	return role == rbac.RoleTeamLeader || role == rbac.RoleManager
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		ReferenceNo:     l.ReferenceNo,
		UserID:          l.UserID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
