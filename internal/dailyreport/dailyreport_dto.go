package dailyreport

type CreateHourlyRequest struct {
	ReportDate string  `json:"reportDate" binding:"required,ymd"`
	HourSlot   string  `json:"hourSlot" binding:"required,hourslot"`
	ProjectID  *string `json:"projectId" binding:"omitempty,max=64"`
	Activity   string  `json:"activity" binding:"required,max=2000"`
	Target     string  `json:"target" binding:"max=1000"`
	Achieved   string  `json:"achieved" binding:"max=1000"`
	Notes      *string `json:"notes" binding:"omitempty,max=2000"`
}

type ListHourlyQuery struct {
	UserID string `form:"userId" binding:"omitempty,uuid"`
	Date   string `form:"date" binding:"omitempty,ymd"`
}

type CreateDailyRequest struct {
	ReportDate   string  `json:"reportDate" binding:"required,ymd"`
	ProjectID    string  `json:"projectId" binding:"required,max=64"`
	CustomerName *string `json:"customerName" binding:"omitempty,max=255"`
	Location     *string `json:"location" binding:"omitempty,max=255"`
	DailyTarget  string  `json:"dailyTarget" binding:"required,max=2000"`
	Achieved     string  `json:"achieved" binding:"max=2000"`
	Status       string  `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED PENDING"`
	Remarks      *string `json:"remarks" binding:"omitempty,max=2000"`
}

// UpdateDailyRequest leaves nil fields unchanged.
type UpdateDailyRequest struct {
	CustomerName *string `json:"customerName" binding:"omitempty,max=255"`
	Location     *string `json:"location" binding:"omitempty,max=255"`
	DailyTarget  *string `json:"dailyTarget" binding:"omitempty,min=1,max=2000"`
	Achieved     *string `json:"achieved" binding:"omitempty,max=2000"`
	Status       *string `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED PENDING"`
	Remarks      *string `json:"remarks" binding:"omitempty,max=2000"`
}

type ListDailyQuery struct {
	UserID string `form:"userId" binding:"omitempty,uuid"`
	From   string `form:"from" binding:"omitempty,ymd"`
	To     string `form:"to" binding:"omitempty,ymd"`
}

type HourlyReportResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	ReportDate string  `json:"reportDate"`
	HourSlot   string  `json:"hourSlot"`
	ProjectID  *string `json:"projectId"`
	Activity   string  `json:"activity"`
	Target     string  `json:"target"`
	Achieved   string  `json:"achieved"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"createdAt"`
}

type DailyReportResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	ReportDate   string  `json:"reportDate"`
	ProjectID    string  `json:"projectId"`
	CustomerName *string `json:"customerName"`
	Location     *string `json:"location"`
	DailyTarget  string  `json:"dailyTarget"`
	Achieved     string  `json:"achieved"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks"`
	UpdatedAt    string  `json:"updatedAt"`
}
