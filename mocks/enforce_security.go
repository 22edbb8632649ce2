package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
)

type EnforceSecurity struct {
	mock.Mock
}

func (e *EnforceSecurity) Permission(permission models.Permission) error {
	args := e.Called(permission)
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) CreateCase() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) TransitionCase(c models.Case, target models.CaseStatus) error {
	args := e.Called(c, target)
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateCourtDate(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) ReassignCase(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) AddCaseNote(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) AttachDocument(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}

func (e *EnforceSecurity) UpdateScanStatus() error {
	args := e.Called()
	return args.Error(0)
}

func (e *EnforceSecurity) ReadCaseEvents(c models.Case) error {
	args := e.Called(c)
	return args.Error(0)
}
