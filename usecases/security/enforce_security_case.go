package security

import (
	"github.com/caseward/caseward-backend/models"
	"github.com/cockroachdb/errors"
)

type EnforceSecurityCase interface {
	EnforceSecurity
	ReadCase(c models.Case) error
	CreateCase() error
	TransitionCase(c models.Case, target models.CaseStatus) error
	UpdateCourtDate(c models.Case) error
	ReassignCase(c models.Case) error
	AddCaseNote(c models.Case) error
	AttachDocument(c models.Case) error
	UpdateScanStatus() error
	ReadCaseEvents(c models.Case) error
}

type EnforceSecurityCaseImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

// relatedToCase: admins see everything; advocates and clients only the cases
// they are attached to.
func (e *EnforceSecurityCaseImpl) relatedToCase(c models.Case) error {
	if c.RelationshipOf(e.Credentials) == models.RelationshipNone && e.Credentials.Role != models.SYSTEM {
		return errors.Wrap(models.ForbiddenError, "actor is not related to this case")
	}
	return nil
}

func (e *EnforceSecurityCaseImpl) ReadCase(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_READ), e.relatedToCase(c))
}

func (e *EnforceSecurityCaseImpl) CreateCase() error {
	return e.Permission(models.CASE_CREATE)
}

// TransitionCase gates a status edge on role and relationship: an advocate may
// only move a case they are assigned to, and some edges are restricted further
// by the per-edge role table.
func (e *EnforceSecurityCaseImpl) TransitionCase(c models.Case, target models.CaseStatus) error {
	if err := e.Permission(models.CASE_TRANSITION); err != nil {
		return err
	}
	if !models.TransitionAllowedForRole(c.Status, target, e.Credentials.Role) {
		return errors.Wrapf(models.ForbiddenError,
			"role %s may not transition %s to %s", e.Credentials.Role, c.Status, target)
	}
	if e.Credentials.Role == models.ADVOCATE && !c.IsAssignedTo(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "only the assigned advocate may transition this case")
	}
	return nil
}

// UpdateCourtDate follows the same role rules as a status transition.
func (e *EnforceSecurityCaseImpl) UpdateCourtDate(c models.Case) error {
	if err := e.Permission(models.CASE_TRANSITION); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADVOCATE && !c.IsAssignedTo(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "only the assigned advocate may edit this case")
	}
	return nil
}

func (e *EnforceSecurityCaseImpl) ReassignCase(c models.Case) error {
	if err := e.Permission(models.CASE_REASSIGN); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADVOCATE && !c.IsAssignedTo(e.Credentials.ActorIdentity.UserId) {
		return errors.Wrap(models.ForbiddenError, "only an admin or the assigned advocate may reassign this case")
	}
	return nil
}

func (e *EnforceSecurityCaseImpl) AddCaseNote(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_NOTE_CREATE), e.relatedToCase(c))
}

func (e *EnforceSecurityCaseImpl) AttachDocument(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_DOCUMENT_CREATE), e.relatedToCase(c))
}

func (e *EnforceSecurityCaseImpl) UpdateScanStatus() error {
	return e.Permission(models.CASE_DOCUMENT_SCAN_UPDATE)
}

func (e *EnforceSecurityCaseImpl) ReadCaseEvents(c models.Case) error {
	return errors.Join(e.Permission(models.CASE_EVENTS_READ), e.relatedToCase(c))
}
