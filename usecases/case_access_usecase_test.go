package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caseward/caseward-backend/mocks"
	"github.com/caseward/caseward-backend/models"
)

type CaseAccessUsecaseTestSuite struct {
	suite.Suite
	executorFactory     *mocks.ExecutorFactory
	transactionFactory  *mocks.TransactionFactory
	executor            *mocks.Executor
	transaction         *mocks.Transaction
	caseRepository      *mocks.CaseRepository
	documentRepository  *mocks.CaseDocumentRepository
	noteRepository      *mocks.CaseNoteRepository
	caseEventRepository *mocks.CaseEventRepository

	advocateId models.UserId
	kase       models.Case
}

// resourceRepository needs both document and note getters; compose the two
// entity mocks.
type resourceRepositoryMock struct {
	*mocks.CaseDocumentRepository
	*mocks.CaseNoteRepository
}

func (suite *CaseAccessUsecaseTestSuite) SetupTest() {
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.caseRepository = new(mocks.CaseRepository)
	suite.documentRepository = new(mocks.CaseDocumentRepository)
	suite.noteRepository = new(mocks.CaseNoteRepository)
	suite.caseEventRepository = new(mocks.CaseEventRepository)

	suite.advocateId = "advocate-1"
	suite.kase = models.Case{
		Id:         "case-1",
		ClientId:   "client-1",
		AssignedTo: &suite.advocateId,
		Status:     models.CaseActive,
	}
}

func (suite *CaseAccessUsecaseTestSuite) makeUsecase(creds models.Credentials) CaseAccessUsecase {
	return CaseAccessUsecase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		caseRepository:     suite.caseRepository,
		resourceRepository: resourceRepositoryMock{
			CaseDocumentRepository: suite.documentRepository,
			CaseNoteRepository:     suite.noteRepository,
		},
		caseEventRepository: suite.caseEventRepository,
		credentials:         creds,
	}
}

func (suite *CaseAccessUsecaseTestSuite) Test_CheckDocumentAccess_allowed() {
	ctx := context.Background()
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: suite.advocateId},
		Role:          models.ADVOCATE,
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.documentRepository.On("GetCaseDocumentById", ctx, suite.executor, "document-1").
		Return(models.CaseDocument{
			Id:          "document-1",
			CaseId:      "case-1",
			AccessLevel: models.LevelConfidential,
			ScanStatus:  models.ScanClean,
		}, nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)

	decision, err := suite.makeUsecase(creds).CheckDocumentAccess(ctx, "document-1", models.ActionRead)

	suite.NoError(err)
	suite.True(decision.Allowed)
	suite.caseEventRepository.AssertNotCalled(suite.T(), "CreateCaseEvent")
}

func (suite *CaseAccessUsecaseTestSuite) Test_CheckDocumentAccess_denied_is_audited() {
	ctx := context.Background()
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: "client-1"},
		Role:          models.CLIENT,
		OriginIp:      "192.0.2.7",
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.documentRepository.On("GetCaseDocumentById", ctx, suite.executor, "document-1").
		Return(models.CaseDocument{
			Id:          "document-1",
			CaseId:      "case-1",
			AccessLevel: models.LevelConfidential,
			ScanStatus:  models.ScanClean,
		}, nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseEventRepository.On("CreateCaseEvent", ctx, suite.transaction,
		mock.MatchedBy(func(event models.CreateCaseEventAttributes) bool {
			return event.EventType == models.AccessDenied &&
				event.CaseId == "case-1" &&
				*event.ResourceId == "document-1" &&
				*event.Reason == string(models.DenialLevelPolicy) &&
				event.OriginIp == "192.0.2.7"
		})).Return(nil)

	decision, err := suite.makeUsecase(creds).CheckDocumentAccess(ctx, "document-1", models.ActionRead)

	suite.NoError(err)
	suite.False(decision.Allowed)
	suite.Equal(models.DenialLevelPolicy, decision.Reason)
	suite.caseEventRepository.AssertExpectations(suite.T())
}

func (suite *CaseAccessUsecaseTestSuite) Test_CheckNoteAccess_internal_note_denied_to_client() {
	ctx := context.Background()
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: "client-1"},
		Role:          models.CLIENT,
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.noteRepository.On("GetCaseNoteById", ctx, suite.executor, "note-1").
		Return(models.CaseNote{
			Id:       "note-1",
			CaseId:   "case-1",
			NoteType: models.NoteInternal,
		}, nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseEventRepository.On("CreateCaseEvent", ctx, suite.transaction,
		mock.MatchedBy(func(event models.CreateCaseEventAttributes) bool {
			return event.EventType == models.AccessDenied &&
				*event.Reason == string(models.DenialInternalNote)
		})).Return(nil)

	decision, err := suite.makeUsecase(creds).CheckNoteAccess(ctx, "note-1", models.ActionRead)

	suite.NoError(err)
	suite.False(decision.Allowed)
	suite.Equal(models.DenialInternalNote, decision.Reason)
}

func (suite *CaseAccessUsecaseTestSuite) Test_CheckNoteAccess_shared_note() {
	ctx := context.Background()
	creds := models.Credentials{
		ActorIdentity: models.Identity{UserId: "advocate-2"},
		Role:          models.ADVOCATE,
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.noteRepository.On("GetCaseNoteById", ctx, suite.executor, "note-1").
		Return(models.CaseNote{
			Id:         "note-1",
			CaseId:     "case-1",
			NoteType:   models.NoteGeneral,
			SharedWith: []models.UserId{"advocate-2"},
		}, nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)

	decision, err := suite.makeUsecase(creds).CheckNoteAccess(ctx, "note-1", models.ActionRead)

	suite.NoError(err)
	suite.True(decision.Allowed)
	suite.caseEventRepository.AssertNotCalled(suite.T(), "CreateCaseEvent")
}

func TestCaseAccessUsecase(t *testing.T) {
	suite.Run(t, new(CaseAccessUsecaseTestSuite))
}
