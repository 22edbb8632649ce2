package models

import (
	"fmt"
	"slices"
	"time"
)

// Case is the unit of consistency: it exclusively owns its status, its
// assignment and its version counter. Documents and notes are owned by
// reference and fetched separately.
type Case struct {
	Id         string
	ClientId   UserId
	AssignedTo *UserId
	Status     CaseStatus
	Priority   CasePriority
	CourtDate  *time.Time
	Tags       []string
	// Version guards optimistic concurrency: every state-changing update is
	// conditioned on the version it was read at.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Case) IsAssignedTo(userId UserId) bool {
	return c.AssignedTo != nil && *c.AssignedTo == userId
}

func (c Case) IsOwnedBy(userId UserId) bool {
	return c.ClientId == userId
}

// RelationshipOf places an actor relative to the case, for the access matrix.
func (c Case) RelationshipOf(creds Credentials) CaseRelationship {
	switch {
	case creds.Role == ADMIN:
		return RelationshipAdmin
	case creds.Role == ADVOCATE && c.IsAssignedTo(creds.ActorIdentity.UserId):
		return RelationshipAssignedAdvocate
	case creds.Role == ADVOCATE:
		return RelationshipOtherAdvocate
	case creds.Role == CLIENT && c.IsOwnedBy(creds.ActorIdentity.UserId):
		return RelationshipOwningClient
	default:
		return RelationshipNone
	}
}

type CaseStatus string

const (
	CaseDraft         CaseStatus = "draft"
	CaseActive        CaseStatus = "active"
	CaseOnHold        CaseStatus = "on_hold"
	CaseResolved      CaseStatus = "resolved"
	CaseClosed        CaseStatus = "closed"
	CaseArchived      CaseStatus = "archived"
	CaseCancelled     CaseStatus = "cancelled"
	CaseUnknownStatus CaseStatus = "unknown"
)

// validTransitions is the whole transition table. Archived and Cancelled have
// no outgoing edges: they are terminal.
var validTransitions = map[CaseStatus][]CaseStatus{
	CaseDraft:    {CaseActive, CaseCancelled},
	CaseActive:   {CaseOnHold, CaseResolved, CaseCancelled},
	CaseOnHold:   {CaseActive, CaseResolved},
	CaseResolved: {CaseClosed},
	CaseClosed:   {CaseArchived},
}

func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	return slices.Contains(validTransitions[s], newStatus)
}

func (s CaseStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

type statusEdge struct {
	From CaseStatus
	To   CaseStatus
}

// transitionRoles restricts who may initiate an edge. Edges absent from this
// map accept any role holding CASE_TRANSITION (so never clients). The security
// layer additionally requires the advocate be the assigned one.
var transitionRoles = map[statusEdge][]Role{
	{CaseActive, CaseResolved}:  {ADVOCATE, ADMIN},
	{CaseOnHold, CaseResolved}:  {ADVOCATE, ADMIN},
	{CaseResolved, CaseClosed}:  {ADVOCATE, ADMIN},
	{CaseClosed, CaseArchived}:  {ADMIN},
	{CaseDraft, CaseCancelled}:  {ADVOCATE, ADMIN},
	{CaseActive, CaseCancelled}: {ADMIN},
}

func TransitionAllowedForRole(from, to CaseStatus, role Role) bool {
	if !role.HasPermission(CASE_TRANSITION) {
		return false
	}
	allowed, restricted := transitionRoles[statusEdge{From: from, To: to}]
	if !restricted {
		return true
	}
	return slices.Contains(allowed, role)
}

func ValidateCaseStatus(status string) (CaseStatus, error) {
	s := CaseStatus(status)
	if _, known := validTransitions[s]; !known && s != CaseArchived && s != CaseCancelled {
		return CaseUnknownStatus, fmt.Errorf("invalid status: %s %w", status, BadParameterError)
	}
	return s, nil
}

type CasePriority string

const (
	PriorityLow    CasePriority = "low"
	PriorityMedium CasePriority = "medium"
	PriorityHigh   CasePriority = "high"
	PriorityUrgent CasePriority = "urgent"
)

var ValidCasePriorities = []CasePriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// NeedsEscalation reports whether the case should be flagged urgent because its
// court date falls within the escalation window.
func (c Case) NeedsEscalation(now time.Time, window time.Duration) bool {
	if c.CourtDate == nil || c.Priority == PriorityUrgent {
		return false
	}
	if c.Status != CaseDraft && c.Status != CaseActive {
		return false
	}
	return c.CourtDate.Before(now.Add(window))
}

type CreateCaseAttributes struct {
	ClientId  UserId
	Priority  CasePriority
	CourtDate *time.Time
	Tags      []string
}

func (attrs CreateCaseAttributes) Validate() error {
	if attrs.ClientId == "" {
		return fmt.Errorf("client id is required %w", BadParameterError)
	}
	if attrs.Priority != "" && !slices.Contains(ValidCasePriorities, attrs.Priority) {
		return fmt.Errorf("invalid priority: %s %w", attrs.Priority, BadParameterError)
	}
	return nil
}

// TransitionParams carries the transition-specific inputs: the on-hold reason
// and an optional court date change.
type TransitionParams struct {
	Reason    string
	CourtDate *time.Time
}
