package usecases

import (
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/usecases/security"
)

// UsecasesWithCreds binds the shared wiring to one actor's credentials. Every
// request (or job run) gets its own instance.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases Usecases) WithCreds(creds models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    usecases,
		Credentials: creds,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceCaseSecurity() security.EnforceSecurityCase {
	return &security.EnforceSecurityCaseImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseLifecycleUsecase() CaseLifecycleUsecase {
	return CaseLifecycleUsecase{
		enforceSecurity:        usecases.NewEnforceCaseSecurity(),
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		repository:             usecases.Repositories.CasewardDbRepository,
		caseEventRepository:    usecases.Repositories.CasewardDbRepository,
		noteRepository:         usecases.Repositories.CasewardDbRepository,
		notificationDispatcher: usecases.Repositories.NotificationDispatcher,
		credentials:            usecases.Credentials,
		escalationWindow:       usecases.escalationWindow,
	}
}

func (usecases *UsecasesWithCreds) NewCaseAssignmentUsecase() CaseAssignmentUsecase {
	return CaseAssignmentUsecase{
		enforceSecurity:        usecases.NewEnforceCaseSecurity(),
		transactionFactory:     usecases.NewTransactionFactory(),
		executorFactory:        usecases.NewExecutorFactory(),
		caseRepository:         usecases.Repositories.CasewardDbRepository,
		assignmentRepository:   usecases.Repositories.CasewardDbRepository,
		advocateRepository:     usecases.Repositories.CasewardDbRepository,
		caseEventRepository:    usecases.Repositories.CasewardDbRepository,
		notificationDispatcher: usecases.Repositories.NotificationDispatcher,
		credentials:            usecases.Credentials,
		reassignmentCoolDown:   usecases.reassignmentCoolDown,
	}
}

func (usecases *UsecasesWithCreds) NewCaseAccessUsecase() CaseAccessUsecase {
	return CaseAccessUsecase{
		executorFactory:     usecases.NewExecutorFactory(),
		transactionFactory:  usecases.NewTransactionFactory(),
		caseRepository:      usecases.Repositories.CasewardDbRepository,
		resourceRepository:  usecases.Repositories.CasewardDbRepository,
		caseEventRepository: usecases.Repositories.CasewardDbRepository,
		credentials:         usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseAuditUsecase() CaseAuditUsecase {
	return CaseAuditUsecase{
		enforceSecurity:     usecases.NewEnforceCaseSecurity(),
		executorFactory:     usecases.NewExecutorFactory(),
		caseRepository:      usecases.Repositories.CasewardDbRepository,
		caseEventRepository: usecases.Repositories.CasewardDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewCaseNoteUsecase() CaseNoteUsecase {
	return CaseNoteUsecase{
		enforceSecurity:     usecases.NewEnforceCaseSecurity(),
		transactionFactory:  usecases.NewTransactionFactory(),
		executorFactory:     usecases.NewExecutorFactory(),
		caseRepository:      usecases.Repositories.CasewardDbRepository,
		caseNoteRepository:  usecases.Repositories.CasewardDbRepository,
		caseEventRepository: usecases.Repositories.CasewardDbRepository,
		credentials:         usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewCaseDocumentUsecase() CaseDocumentUsecase {
	return CaseDocumentUsecase{
		enforceSecurity:        usecases.NewEnforceCaseSecurity(),
		transactionFactory:     usecases.NewTransactionFactory(),
		executorFactory:        usecases.NewExecutorFactory(),
		caseRepository:         usecases.Repositories.CasewardDbRepository,
		caseDocumentRepository: usecases.Repositories.CasewardDbRepository,
		caseEventRepository:    usecases.Repositories.CasewardDbRepository,
		credentials:            usecases.Credentials,
	}
}
