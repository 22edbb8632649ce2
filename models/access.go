package models

import (
	"slices"
)

type AccessLevel string

const (
	LevelPublic       AccessLevel = "public"
	LevelRestricted   AccessLevel = "restricted"
	LevelConfidential AccessLevel = "confidential"
)

var ValidAccessLevels = []AccessLevel{LevelPublic, LevelRestricted, LevelConfidential}

type AccessAction string

const (
	ActionRead   AccessAction = "read"
	ActionWrite  AccessAction = "write"
	ActionDelete AccessAction = "delete"
	ActionShare  AccessAction = "share"
)

type CaseRelationship int

const (
	RelationshipNone CaseRelationship = iota
	RelationshipOwningClient
	RelationshipAssignedAdvocate
	RelationshipOtherAdvocate
	RelationshipAdmin
)

func (r CaseRelationship) String() string {
	switch r {
	case RelationshipOwningClient:
		return "owning_client"
	case RelationshipAssignedAdvocate:
		return "assigned_advocate"
	case RelationshipOtherAdvocate:
		return "other_advocate"
	case RelationshipAdmin:
		return "admin"
	default:
		return "none"
	}
}

type AccessDenialReason string

const (
	DenialNone             AccessDenialReason = ""
	DenialLevelPolicy      AccessDenialReason = "level_policy"
	DenialInfectedDocument AccessDenialReason = "infected_document"
	DenialScanPending      AccessDenialReason = "scan_pending"
	DenialInternalNote     AccessDenialReason = "internal_note"
	DenialNoRelationship   AccessDenialReason = "no_relationship"
)

// AccessDecision is what the evaluator returns: a definitive boolean plus a
// reason code for observability. It is never an error.
type AccessDecision struct {
	Allowed bool
	Reason  AccessDenialReason
}

func allow() AccessDecision {
	return AccessDecision{Allowed: true}
}

func deny(reason AccessDenialReason) AccessDecision {
	return AccessDecision{Allowed: false, Reason: reason}
}

type accessKey struct {
	Relationship CaseRelationship
	Level        AccessLevel
}

// accessMatrix is the rule table from the product's access policy, verbatim.
// Most restrictive wins: anything absent is denied. Admins read but do not
// write confidential material; clients never see anything above public.
var accessMatrix = map[accessKey][]AccessAction{
	{RelationshipOwningClient, LevelPublic}:           {ActionRead},
	{RelationshipAssignedAdvocate, LevelPublic}:       {ActionRead, ActionWrite, ActionDelete, ActionShare},
	{RelationshipOtherAdvocate, LevelPublic}:          {ActionRead},
	{RelationshipAdmin, LevelPublic}:                  {ActionRead, ActionWrite, ActionDelete, ActionShare},
	{RelationshipAssignedAdvocate, LevelRestricted}:   {ActionRead, ActionWrite, ActionDelete, ActionShare},
	{RelationshipAdmin, LevelRestricted}:              {ActionRead, ActionWrite, ActionDelete, ActionShare},
	{RelationshipAssignedAdvocate, LevelConfidential}: {ActionRead, ActionWrite, ActionDelete, ActionShare},
	{RelationshipAdmin, LevelConfidential}:            {ActionRead},
}

type ResourceKind string

const (
	ResourceDocument ResourceKind = "document"
	ResourceNote     ResourceKind = "note"
)

// AccessResource is the flattened view of a document or note the evaluator
// needs. Notes carry an implicit level: internal notes behave as restricted
// plus the client exclusion; shared notes grant read to users on the list.
type AccessResource struct {
	Kind       ResourceKind
	Level      AccessLevel
	ScanStatus ScanStatus
	NoteType   CaseNoteType
	SharedWith []UserId
}

// EvaluateAccess decides whether creds may perform action on resource within
// kase. Pure function: no state is read or written, no error is possible.
func EvaluateAccess(creds Credentials, kase Case, resource AccessResource, action AccessAction) AccessDecision {
	// A document is unreadable for everyone until scanned clean.
	if resource.Kind == ResourceDocument && action == ActionRead && resource.ScanStatus != ScanClean {
		if resource.ScanStatus == ScanInfected {
			return deny(DenialInfectedDocument)
		}
		return deny(DenialScanPending)
	}

	if resource.Kind == ResourceNote && resource.NoteType == NoteInternal && creds.Role == CLIENT {
		return deny(DenialInternalNote)
	}

	relationship := kase.RelationshipOf(creds)
	if relationship == RelationshipNone {
		return deny(DenialNoRelationship)
	}

	// An explicit share grants read on notes to listed users, nothing more.
	if resource.Kind == ResourceNote && action == ActionRead &&
		slices.Contains(resource.SharedWith, creds.ActorIdentity.UserId) &&
		!(resource.NoteType == NoteInternal && creds.Role == CLIENT) {
		return allow()
	}

	if slices.Contains(accessMatrix[accessKey{relationship, resource.Level}], action) {
		return allow()
	}
	return deny(DenialLevelPolicy)
}
