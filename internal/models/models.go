package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. The schema of each collection is the struct below with
// the matching name.
const (
	CollectionJob         = "job"
	CollectionCompany     = "company"
	CollectionApplication = "application"
)

// Employment types are an open enum: stored as-is, not validated against a
// closed set, so existing clients with other values keep working.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// Application statuses. Open enum; this system never transitions them.
const (
	StatusSubmitted   = "submitted"
	StatusReviewed    = "reviewed"
	StatusInterviewed = "interviewed"
	StatusOffered     = "offered"
	StatusRejected    = "rejected"
)

type Job struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	CompanyID      string             `bson:"company_id,omitempty" json:"company_id,omitempty"`
	CompanyName    string             `bson:"company_name" json:"company_name"`
	Location       string             `bson:"location" json:"location"`
	EmploymentType string             `bson:"employment_type" json:"employment_type"`
	SalaryMin      *int               `bson:"salary_min,omitempty" json:"salary_min,omitempty"`
	SalaryMax      *int               `bson:"salary_max,omitempty" json:"salary_max,omitempty"`
	Description    string             `bson:"description" json:"description"`
	Requirements   []string           `bson:"requirements" json:"requirements"`
	Tags           []string           `bson:"tags" json:"tags"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	PostedAt       time.Time          `bson:"posted_at" json:"posted_at"`
}

type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	LogoURL     string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID       string             `bson:"job_id" json:"job_id"`
	JobTitle    string             `bson:"job_title" json:"job_title"`
	CompanyName string             `bson:"company_name" json:"company_name"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	ResumeURL   string             `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	CoverLetter string             `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	Status      string             `bson:"status" json:"status"`
}
