package models

type Permission int

const (
	CASE_READ Permission = iota
	CASE_CREATE
	CASE_TRANSITION
	CASE_ASSIGN
	CASE_REASSIGN
	CASE_NOTE_CREATE
	CASE_DOCUMENT_CREATE
	CASE_DOCUMENT_SCAN_UPDATE
	CASE_EVENTS_READ
)

// ROLES_PERMISSIONS is the one place role capabilities are declared. Relationship
// to the case (owning client, assigned advocate...) is enforced separately by the
// security layer and the access matrix.
var ROLES_PERMISSIONS = map[Role][]Permission{
	CLIENT: {
		CASE_READ,
		CASE_NOTE_CREATE,
		CASE_DOCUMENT_CREATE,
		CASE_EVENTS_READ,
	},
	ADVOCATE: {
		CASE_READ,
		CASE_CREATE,
		CASE_TRANSITION,
		CASE_REASSIGN,
		CASE_NOTE_CREATE,
		CASE_DOCUMENT_CREATE,
		CASE_EVENTS_READ,
	},
	ADMIN: {
		CASE_READ,
		CASE_CREATE,
		CASE_TRANSITION,
		CASE_ASSIGN,
		CASE_REASSIGN,
		CASE_NOTE_CREATE,
		CASE_DOCUMENT_CREATE,
		CASE_DOCUMENT_SCAN_UPDATE,
		CASE_EVENTS_READ,
	},
	SYSTEM: {
		CASE_READ,
		CASE_TRANSITION,
		CASE_ASSIGN,
		CASE_DOCUMENT_SCAN_UPDATE,
		CASE_EVENTS_READ,
	},
}
