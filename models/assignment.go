package models

import (
	"time"
)

// Assignment binds a case to its responsible advocate. Assignments are never
// deleted: a new one supersedes the previous, preserving history.
type Assignment struct {
	Id           string
	CaseId       string
	AdvocateId   UserId
	Reason       AssignmentReason
	AssignedAt   time.Time
	SupersededAt *time.Time
}

type AssignmentReason string

const (
	AssignmentInitial      AssignmentReason = "initial"
	AssignmentReassignment AssignmentReason = "reassignment"
	AssignmentEscalation   AssignmentReason = "escalation"
)

type CreateAssignmentAttributes struct {
	CaseId     string
	AdvocateId UserId
	Reason     AssignmentReason
}
