package dtos

import "time"

// JobCreateRequest is the POST /jobs payload. Pointer fields distinguish
// "absent" from zero so the service can apply defaults (is_active true,
// posted_at now).
type JobCreateRequest struct {
	Title          string     `json:"title" binding:"required"`
	CompanyID      string     `json:"company_id"`
	CompanyName    string     `json:"company_name" binding:"required"`
	Location       string     `json:"location" binding:"required"`
	EmploymentType string     `json:"employment_type" binding:"required"`
	SalaryMin      *int       `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *int       `json:"salary_max" binding:"omitempty,gte=0"`
	Description    string     `json:"description" binding:"required"`
	Requirements   []string   `json:"requirements"`
	Tags           []string   `json:"tags"`
	IsActive       *bool      `json:"is_active"`
	PostedAt       *time.Time `json:"posted_at"`
}

// JobSearchQuery is the GET /jobs query string. All filters optional.
type JobSearchQuery struct {
	Q        string `form:"q"`
	Location string `form:"location"`
	Tag      string `form:"tag"`
	Limit    int64  `form:"limit,default=50"`
}

// CompanyCreateRequest is the POST /companies payload.
type CompanyCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

// ApplicationCreateRequest is the POST /applications payload. Status
// defaults to "submitted" when empty.
type ApplicationCreateRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	JobTitle    string `json:"job_title" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
	Status      string `json:"status"`
}

// ApplicationListQuery is the GET /applications query string.
type ApplicationListQuery struct {
	JobID string `form:"job_id"`
	Limit int64  `form:"limit,default=100"`
}
