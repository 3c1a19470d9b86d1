package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=ANNUAL SICK CASUAL UNPAID"`
	StartDate string `json:"start_date" binding:"required,ymd"`
	EndDate   string `json:"end_date" binding:"required,ymd"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type ListLeavesFilter struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	ReferenceNo     string  `json:"reference_no"`
	UserID          string  `json:"user_id"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
