package dailyreport

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dailyreport_repo.go -destination=mock/dailyreport_repo_mock.go -package=mock
type Repository interface {
	CreateHourly(ctx context.Context, r *HourlyReport) error
	FindHourly(ctx context.Context, userID, reportDate string) ([]HourlyReport, error)
	CreateDaily(ctx context.Context, r *DailyTargetReport) error
	FindDailyByID(ctx context.Context, id string) (*DailyTargetReport, error)
	UpdateDaily(ctx context.Context, r *DailyTargetReport) error
	FindDaily(ctx context.Context, userID, from, to string) ([]DailyTargetReport, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateHourly(ctx context.Context, rep *HourlyReport) error {
	return MapRepositoryError(r.db.WithContext(ctx).Create(rep).Error)
}

// FindHourly returns the day's slots in time order; HH:MM-HH:MM sorts lexically.
func (r *repository) FindHourly(ctx context.Context, userID, reportDate string) ([]HourlyReport, error) {
	var reports []HourlyReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND report_date = ?", userID, reportDate).
		Order("hour_slot ASC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) CreateDaily(ctx context.Context, rep *DailyTargetReport) error {
	return MapRepositoryError(r.db.WithContext(ctx).Create(rep).Error)
}

func (r *repository) FindDailyByID(ctx context.Context, id string) (*DailyTargetReport, error) {
	var rep DailyTargetReport
	if err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error; err != nil {
		return nil, MapRepositoryError(err)
	}
	return &rep, nil
}

func (r *repository) UpdateDaily(ctx context.Context, rep *DailyTargetReport) error {
	return MapRepositoryError(r.db.WithContext(ctx).Save(rep).Error)
}

func (r *repository) FindDaily(ctx context.Context, userID, from, to string) ([]DailyTargetReport, error) {
	var reports []DailyTargetReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("report_date BETWEEN ? AND ?", from, to).
		Order("report_date DESC, project_id ASC").
		Find(&reports).Error
	return reports, err
}
