package models

// NotificationIntent is emitted after a committed state change. Delivery is
// fire-and-forget: the core never waits on it.
type NotificationIntent struct {
	Kind        NotificationKind
	CaseId      string
	RecipientId UserId
}

type NotificationKind string

const (
	NotificationCaseAssigned   NotificationKind = "case_assigned"
	NotificationCaseReassigned NotificationKind = "case_reassigned"
	NotificationCaseEscalated  NotificationKind = "case_escalated"
)
