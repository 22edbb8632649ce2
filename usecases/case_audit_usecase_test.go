package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/caseward/caseward-backend/mocks"
	"github.com/caseward/caseward-backend/models"
)

type CaseAuditUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity     *mocks.EnforceSecurity
	executorFactory     *mocks.ExecutorFactory
	executor            *mocks.Executor
	caseRepository      *mocks.CaseRepository
	caseEventRepository *mocks.CaseEventRepository

	kase models.Case
}

func (suite *CaseAuditUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.caseRepository = new(mocks.CaseRepository)
	suite.caseEventRepository = new(mocks.CaseEventRepository)

	suite.kase = models.Case{Id: "case-1", ClientId: "client-1", Status: models.CaseActive}
}

func (suite *CaseAuditUsecaseTestSuite) makeUsecase() CaseAuditUsecase {
	return CaseAuditUsecase{
		enforceSecurity:     suite.enforceSecurity,
		executorFactory:     suite.executorFactory,
		caseRepository:      suite.caseRepository,
		caseEventRepository: suite.caseEventRepository,
	}
}

func (suite *CaseAuditUsecaseTestSuite) Test_GetCaseHistory_pages_by_seq() {
	ctx := context.Background()
	cursor := models.HistoryCursor{AfterSeq: 2, Limit: 2}
	events := []models.CaseEvent{
		{Id: "event-3", CaseId: "case-1", Seq: 3, EventType: models.CaseAssigned},
		{Id: "event-4", CaseId: "case-1", Seq: 4, EventType: models.CaseStatusUpdated},
	}

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)
	suite.enforceSecurity.On("ReadCaseEvents", suite.kase).Return(nil)
	suite.caseEventRepository.On("ListCaseEvents", ctx, suite.executor, "case-1", cursor).
		Return(events, nil)

	page, err := suite.makeUsecase().GetCaseHistory(ctx, "case-1", cursor)

	suite.NoError(err)
	suite.Len(page, 2)
	suite.Equal(int64(3), page[0].Seq)
	suite.Equal(int64(4), page[1].Seq)
}

func (suite *CaseAuditUsecaseTestSuite) Test_GetCaseHistory_forbidden() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.caseRepository.On("GetCaseById", ctx, suite.executor, "case-1").
		Return(suite.kase, nil)
	suite.enforceSecurity.On("ReadCaseEvents", suite.kase).Return(models.ForbiddenError)

	_, err := suite.makeUsecase().GetCaseHistory(ctx, "case-1", models.HistoryCursor{})

	suite.ErrorIs(err, models.ForbiddenError)
	suite.caseEventRepository.AssertNotCalled(suite.T(), "ListCaseEvents")
}

func TestCaseAuditUsecase(t *testing.T) {
	suite.Run(t, new(CaseAuditUsecaseTestSuite))
}
