package timetracking

type ClockRequest struct {
	Latitude     *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	LocationName *string  `json:"locationName" binding:"omitempty,max=255"`
}

type StartActivityRequest struct {
	ProjectID       *string `json:"projectId" binding:"omitempty,max=64"`
	ActivityType    string  `json:"activityType" binding:"required,max=64"`
	TaskDescription *string `json:"taskDescription"`
}

type StartBreakRequest struct {
	BreakType string  `json:"breakType" binding:"omitempty,max=32"`
	Notes     *string `json:"notes"`
}

type WeeklyReportQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,ymd"`
	EndDate   string `form:"endDate" binding:"omitempty,ymd"`
}

type TeamAttendanceQuery struct {
	Date string `form:"date" binding:"omitempty,ymd"`
}

type LocationResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Name      *string  `json:"name"`
}

type ClockInResponse struct {
	SessionID   string           `json:"sessionId"`
	WorkDate    string           `json:"workDate"`
	ClockInTime string           `json:"clockInTime"`
	Location    LocationResponse `json:"location"`
}

// DayTotals aggregates every session of one user on one work date.
type DayTotals struct {
	Date          string  `json:"date"`
	SessionCount  int     `json:"sessionCount"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	BreakMinutes  int     `json:"breakMinutes"`
}

type ClockOutResponse struct {
	SessionID     string    `json:"sessionId"`
	ClockOutTime  string    `json:"clockOutTime"`
	TotalHours    float64   `json:"totalHours"`
	OvertimeHours float64   `json:"overtimeHours"`
	BreakMinutes  int       `json:"breakMinutes"`
	TodaySummary  DayTotals `json:"todaySummary"`
}

type SupersededActivity struct {
	PreviousID      string `json:"previousId"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type StartActivityResponse struct {
	ActivityID string              `json:"activityId"`
	StartTime  string              `json:"startTime"`
	Superseded *SupersededActivity `json:"superseded,omitempty"`
}

type StopActivityResponse struct {
	ActivityID      string `json:"activityId"`
	DurationMinutes int    `json:"durationMinutes"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

type StartBreakResponse struct {
	BreakID   string `json:"breakId"`
	StartTime string `json:"startTime"`
	BreakType string `json:"breakType"`
}

type EndBreakResponse struct {
	BreakID         string `json:"breakId"`
	DurationMinutes int    `json:"durationMinutes"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

type SessionSummary struct {
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	CurrentSessionID *string `json:"currentSessionId"`
	SessionCount     int     `json:"sessionCount"`
	FirstClockIn     string  `json:"firstClockIn"`
	LastClockOut     *string `json:"lastClockOut"`
	TotalHours       float64 `json:"totalHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	BreakMinutes     int     `json:"breakMinutes"`
	ActivityCount    int     `json:"activityCount"`
	ActivityMinutes  int     `json:"activityMinutes"`
	BreakCount       int     `json:"breakCount"`
}

type ActivityResponse struct {
	ID              string  `json:"id"`
	SessionID       string  `json:"sessionId"`
	ProjectID       *string `json:"projectId"`
	ActivityType    string  `json:"activityType"`
	TaskDescription *string `json:"taskDescription"`
	StartTime       string  `json:"startTime"`
	EndTime         *string `json:"endTime"`
	DurationMinutes *int    `json:"durationMinutes"`
}

type BreakResponse struct {
	ID              string  `json:"id"`
	SessionID       string  `json:"sessionId"`
	BreakType       string  `json:"breakType"`
	StartTime       string  `json:"startTime"`
	EndTime         *string `json:"endTime"`
	DurationMinutes *int    `json:"durationMinutes"`
	Notes           *string `json:"notes"`
}

type TodaySummaryResponse struct {
	Summary    *SessionSummary    `json:"summary"`
	Activities []ActivityResponse `json:"activities"`
	Breaks     []BreakResponse    `json:"breaks"`
}

type DailyAggregate struct {
	Date          string  `json:"date"`
	DaysWorked    int     `json:"daysWorked"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	BreakMinutes  int     `json:"breakMinutes"`
	ActivityCount int     `json:"activityCount"`
	BreakCount    int     `json:"breakCount"`
}

type TeamAttendanceRow struct {
	UserID        string  `json:"userId"`
	FullName      string  `json:"fullName"`
	Role          string  `json:"role"`
	ManagerID     *string `json:"managerId"`
	SessionCount  int     `json:"sessionCount"`
	FirstClockIn  string  `json:"firstClockIn"`
	LastClockOut  *string `json:"lastClockOut"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	BreakMinutes  int     `json:"breakMinutes"`
	Status        string  `json:"status"`
}
