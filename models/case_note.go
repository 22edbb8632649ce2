package models

import (
	"fmt"
	"slices"
	"time"
)

type CaseNote struct {
	Id         string
	CaseId     string
	AuthorId   UserId
	NoteType   CaseNoteType
	Body       string
	SharedWith []UserId
	// FollowUpDue is set on follow-up notes; the note stays "open" until
	// FollowUpDone. Open follow-ups block the Resolved -> Closed transition.
	FollowUpDue  *time.Time
	FollowUpDone bool
	CreatedAt    time.Time
}

func (n CaseNote) IsOpenFollowUp() bool {
	return n.NoteType == NoteFollowUp && n.FollowUpDue != nil && !n.FollowUpDone
}

type CaseNoteType string

const (
	NoteGeneral  CaseNoteType = "general"
	NoteFollowUp CaseNoteType = "follow_up"
	// NoteInternal notes are never visible to the client role, whatever the
	// confidentiality level says.
	NoteInternal CaseNoteType = "internal"
)

var ValidCaseNoteTypes = []CaseNoteType{NoteGeneral, NoteFollowUp, NoteInternal}

type CreateCaseNoteAttributes struct {
	CaseId      string
	NoteType    CaseNoteType
	Body        string
	SharedWith  []UserId
	FollowUpDue *time.Time
}

func (attrs CreateCaseNoteAttributes) Validate() error {
	if attrs.Body == "" {
		return fmt.Errorf("note body is required %w", BadParameterError)
	}
	if !slices.Contains(ValidCaseNoteTypes, attrs.NoteType) {
		return fmt.Errorf("invalid note type: %s %w", attrs.NoteType, BadParameterError)
	}
	if attrs.NoteType == NoteFollowUp && attrs.FollowUpDue == nil {
		return fmt.Errorf("follow-up note requires a due date %w", BadParameterError)
	}
	return nil
}
