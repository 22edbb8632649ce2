package models

import (
	"time"
)

// CaseEvent is one immutable entry of the per-case audit trail. Entries are
// ordered by Seq, a monotonic per-case sequence number assigned at commit
// time, so ordering survives clock skew between writers.
type CaseEvent struct {
	Id            string
	CaseId        string
	Seq           int64
	ActorId       *UserId
	EventType     CaseEventType
	PreviousValue string
	NewValue      string
	Reason        string
	ResourceId    string
	ResourceType  CaseEventResourceType
	OriginIp      string
	CreatedAt     time.Time
}

type CaseEventType string

const (
	CaseCreated       CaseEventType = "case_created"
	CaseStatusUpdated CaseEventType = "status_updated"
	CaseAssigned      CaseEventType = "case_assigned"
	CaseReassigned    CaseEventType = "case_reassigned"
	CaseEscalated     CaseEventType = "case_escalated"
	CourtDateUpdated  CaseEventType = "court_date_updated"
	NoteAdded         CaseEventType = "note_added"
	FollowUpCompleted CaseEventType = "follow_up_completed"
	DocumentAdded     CaseEventType = "document_added"
	DocumentScanned   CaseEventType = "document_scanned"
	AccessDenied      CaseEventType = "access_denied"
	UnknownEvent      CaseEventType = "unknown_event"
)

func CaseEventTypeFrom(s string) CaseEventType {
	switch t := CaseEventType(s); t {
	case CaseCreated, CaseStatusUpdated, CaseAssigned, CaseReassigned, CaseEscalated,
		CourtDateUpdated, NoteAdded, FollowUpCompleted, DocumentAdded, DocumentScanned,
		AccessDenied:
		return t
	default:
		return UnknownEvent
	}
}

type CaseEventResourceType string

const (
	DocumentResourceType   CaseEventResourceType = "document"
	NoteResourceType       CaseEventResourceType = "note"
	AssignmentResourceType CaseEventResourceType = "assignment"
	UnknownResourceType    CaseEventResourceType = "unknown"
)

func CaseEventResourceTypeFrom(s string) CaseEventResourceType {
	switch t := CaseEventResourceType(s); t {
	case DocumentResourceType, NoteResourceType, AssignmentResourceType:
		return t
	default:
		return UnknownResourceType
	}
}

type CreateCaseEventAttributes struct {
	CaseId        string
	ActorId       *UserId
	EventType     CaseEventType
	PreviousValue *string
	NewValue      *string
	Reason        *string
	ResourceId    *string
	ResourceType  *CaseEventResourceType
	OriginIp      string
}
