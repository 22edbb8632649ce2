package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caseward/caseward-backend/mocks"
	"github.com/caseward/caseward-backend/models"
)

type CaseAssignmentUsecaseTestSuite struct {
	suite.Suite
	enforceSecurity        *mocks.EnforceSecurity
	transactionFactory     *mocks.TransactionFactory
	executorFactory        *mocks.ExecutorFactory
	transaction            *mocks.Transaction
	caseRepository         *mocks.CaseRepository
	assignmentRepository   *mocks.AssignmentRepository
	advocateRepository     *mocks.AdvocateRepository
	caseEventRepository    *mocks.CaseEventRepository
	notificationDispatcher *mocks.NotificationDispatcher

	kase models.Case
}

func (suite *CaseAssignmentUsecaseTestSuite) SetupTest() {
	suite.enforceSecurity = new(mocks.EnforceSecurity)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.caseRepository = new(mocks.CaseRepository)
	suite.assignmentRepository = new(mocks.AssignmentRepository)
	suite.advocateRepository = new(mocks.AdvocateRepository)
	suite.caseEventRepository = new(mocks.CaseEventRepository)
	suite.notificationDispatcher = new(mocks.NotificationDispatcher)

	suite.kase = models.Case{
		Id:       "case-1",
		ClientId: "client-1",
		Status:   models.CaseDraft,
		Tags:     []string{"family_law"},
		Version:  1,
	}
}

func (suite *CaseAssignmentUsecaseTestSuite) makeUsecase(creds models.Credentials, coolDown time.Duration) CaseAssignmentUsecase {
	return CaseAssignmentUsecase{
		enforceSecurity:        suite.enforceSecurity,
		transactionFactory:     suite.transactionFactory,
		executorFactory:        suite.executorFactory,
		caseRepository:         suite.caseRepository,
		assignmentRepository:   suite.assignmentRepository,
		advocateRepository:     suite.advocateRepository,
		caseEventRepository:    suite.caseEventRepository,
		notificationDispatcher: suite.notificationDispatcher,
		credentials:            creds,
		reassignmentCoolDown:   coolDown,
	}
}

func (suite *CaseAssignmentUsecaseTestSuite) adminCreds() models.Credentials {
	return models.Credentials{
		ActorIdentity: models.Identity{UserId: "admin-1"},
		Role:          models.ADMIN,
	}
}

func advocateWithLoad(id models.UserId, activeCases int, lastAssigned *time.Time) models.AdvocateWithCaseLoad {
	return models.AdvocateWithCaseLoad{
		Advocate: models.Advocate{
			UserId:         id,
			Role:           models.ADVOCATE,
			Verified:       true,
			Active:         true,
			Tags:           []string{"family_law"},
			LastAssignedAt: lastAssigned,
		},
		ActiveCaseCount: activeCases,
	}
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_AssignCase_picks_least_loaded() {
	ctx := context.Background()

	suite.enforceSecurity.On("Permission", models.CASE_ASSIGN).Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(suite.kase, nil)
	// repository returns candidates already ordered by load then recency
	suite.advocateRepository.On("ListEligibleAdvocates", ctx, suite.transaction, []string{"family_law"}).
		Return([]models.AdvocateWithCaseLoad{
			advocateWithLoad("advocate-2", 1, nil),
			advocateWithLoad("advocate-1", 4, nil),
		}, nil)
	suite.assignmentRepository.On("CreateAssignment", ctx, suite.transaction,
		models.CreateAssignmentAttributes{
			CaseId:     "case-1",
			AdvocateId: "advocate-2",
			Reason:     models.AssignmentInitial,
		}, mock.AnythingOfType("string")).Return(nil)
	suite.caseRepository.On("AssignCase", ctx, suite.transaction, "case-1", 1, models.UserId("advocate-2")).
		Return(true, nil)
	suite.advocateRepository.On("TouchLastAssignedAt", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(nil)
	suite.caseEventRepository.On("CreateCaseEvent", ctx, suite.transaction,
		mock.MatchedBy(func(event models.CreateCaseEventAttributes) bool {
			return event.EventType == models.CaseAssigned &&
				event.PreviousValue == nil &&
				*event.NewValue == "advocate-2"
		})).Return(nil)
	suite.notificationDispatcher.On("Dispatch", ctx, models.NotificationIntent{
		Kind:        models.NotificationCaseAssigned,
		CaseId:      "case-1",
		RecipientId: "advocate-2",
	}).Return()

	assignment, err := suite.makeUsecase(suite.adminCreds(), 0).AssignCase(ctx, "case-1")

	suite.NoError(err)
	suite.Equal(models.UserId("advocate-2"), assignment.AdvocateId)
	suite.Equal(models.AssignmentInitial, assignment.Reason)
	suite.notificationDispatcher.AssertExpectations(suite.T())
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_AssignCase_no_eligible_advocate() {
	ctx := context.Background()

	suite.enforceSecurity.On("Permission", models.CASE_ASSIGN).Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(suite.kase, nil)
	suite.advocateRepository.On("ListEligibleAdvocates", ctx, suite.transaction, []string{"family_law"}).
		Return([]models.AdvocateWithCaseLoad{}, nil)

	_, err := suite.makeUsecase(suite.adminCreds(), 0).AssignCase(ctx, "case-1")

	suite.ErrorIs(err, models.ErrNoEligibleAdvocate)
	suite.assignmentRepository.AssertNotCalled(suite.T(), "CreateAssignment")
	suite.notificationDispatcher.AssertNotCalled(suite.T(), "Dispatch")
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_AssignCase_terminal_case() {
	ctx := context.Background()
	cancelledCase := suite.kase
	cancelledCase.Status = models.CaseCancelled

	suite.enforceSecurity.On("Permission", models.CASE_ASSIGN).Return(nil)
	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(cancelledCase, nil)

	_, err := suite.makeUsecase(suite.adminCreds(), 0).AssignCase(ctx, "case-1")

	suite.ErrorIs(err, models.ErrCaseTerminal)
	suite.advocateRepository.AssertNotCalled(suite.T(), "ListEligibleAdvocates")
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_ReassignCase_nominal() {
	ctx := context.Background()
	currentAdvocate := models.UserId("advocate-1")
	activeCase := suite.kase
	activeCase.Status = models.CaseActive
	activeCase.AssignedTo = &currentAdvocate

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(activeCase, nil)
	suite.enforceSecurity.On("ReassignCase", activeCase).Return(nil)
	suite.advocateRepository.On("GetAdvocateById", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(advocateWithLoad("advocate-2", 0, nil).Advocate, nil)
	suite.assignmentRepository.On("GetActiveAssignment", ctx, suite.transaction, "case-1").
		Return(&models.Assignment{
			Id:         "assignment-1",
			CaseId:     "case-1",
			AdvocateId: currentAdvocate,
			AssignedAt: time.Now().Add(-36 * time.Hour),
		}, nil)
	suite.assignmentRepository.On("SupersedeActiveAssignment", ctx, suite.transaction, "case-1").
		Return(nil)
	suite.assignmentRepository.On("CreateAssignment", ctx, suite.transaction,
		models.CreateAssignmentAttributes{
			CaseId:     "case-1",
			AdvocateId: "advocate-2",
			Reason:     models.AssignmentReassignment,
		}, mock.AnythingOfType("string")).Return(nil)
	suite.caseRepository.On("AssignCase", ctx, suite.transaction, "case-1", 1, models.UserId("advocate-2")).
		Return(true, nil)
	suite.advocateRepository.On("TouchLastAssignedAt", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(nil)
	suite.caseEventRepository.On("CreateCaseEvent", ctx, suite.transaction,
		mock.MatchedBy(func(event models.CreateCaseEventAttributes) bool {
			return event.EventType == models.CaseReassigned &&
				*event.PreviousValue == "advocate-1" &&
				*event.NewValue == "advocate-2"
		})).Return(nil)
	suite.notificationDispatcher.On("Dispatch", ctx, mock.Anything).Return()

	assignment, err := suite.makeUsecase(suite.adminCreds(), 0).ReassignCase(ctx, "case-1", "advocate-2")

	suite.NoError(err)
	suite.Equal(models.UserId("advocate-2"), assignment.AdvocateId)
	suite.Equal(models.AssignmentReassignment, assignment.Reason)
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_ReassignCase_unverified_target() {
	ctx := context.Background()
	currentAdvocate := models.UserId("advocate-1")
	activeCase := suite.kase
	activeCase.Status = models.CaseActive
	activeCase.AssignedTo = &currentAdvocate

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(activeCase, nil)
	suite.enforceSecurity.On("ReassignCase", activeCase).Return(nil)
	suite.advocateRepository.On("GetAdvocateById", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(models.Advocate{
			UserId:   "advocate-2",
			Role:     models.ADVOCATE,
			Verified: false,
			Active:   true,
		}, nil)

	_, err := suite.makeUsecase(suite.adminCreds(), 0).ReassignCase(ctx, "case-1", "advocate-2")

	suite.ErrorIs(err, models.ErrAdvocateNotAssignable)
	suite.assignmentRepository.AssertNotCalled(suite.T(), "CreateAssignment")
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_ReassignCase_target_without_matching_tags() {
	ctx := context.Background()
	currentAdvocate := models.UserId("advocate-1")
	activeCase := suite.kase
	activeCase.Status = models.CaseActive
	activeCase.AssignedTo = &currentAdvocate

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(activeCase, nil)
	suite.enforceSecurity.On("ReassignCase", activeCase).Return(nil)
	suite.advocateRepository.On("GetAdvocateById", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(models.Advocate{
			UserId:   "advocate-2",
			Role:     models.ADVOCATE,
			Verified: true,
			Active:   true,
			Tags:     []string{"criminal"},
		}, nil)

	_, err := suite.makeUsecase(suite.adminCreds(), 0).ReassignCase(ctx, "case-1", "advocate-2")

	suite.ErrorIs(err, models.ErrAdvocateNotAssignable)
	suite.assignmentRepository.AssertNotCalled(suite.T(), "CreateAssignment")
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_ReassignCase_cool_down() {
	ctx := context.Background()
	currentAdvocate := models.UserId("advocate-1")
	activeCase := suite.kase
	activeCase.Status = models.CaseActive
	activeCase.AssignedTo = &currentAdvocate

	advocateCreds := models.Credentials{
		ActorIdentity: models.Identity{UserId: currentAdvocate},
		Role:          models.ADVOCATE,
	}

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(activeCase, nil)
	suite.enforceSecurity.On("ReassignCase", activeCase).Return(nil)
	suite.advocateRepository.On("GetAdvocateById", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(advocateWithLoad("advocate-2", 0, nil).Advocate, nil)
	suite.assignmentRepository.On("GetActiveAssignment", ctx, suite.transaction, "case-1").
		Return(&models.Assignment{
			Id:         "assignment-1",
			CaseId:     "case-1",
			AdvocateId: currentAdvocate,
			AssignedAt: time.Now().Add(-10 * time.Minute),
		}, nil)

	_, err := suite.makeUsecase(advocateCreds, time.Hour).ReassignCase(ctx, "case-1", "advocate-2")

	suite.ErrorIs(err, models.ErrReassignmentCoolDown)
	suite.assignmentRepository.AssertNotCalled(suite.T(), "SupersedeActiveAssignment")
}

func (suite *CaseAssignmentUsecaseTestSuite) Test_ReassignCase_admin_bypasses_cool_down() {
	ctx := context.Background()
	currentAdvocate := models.UserId("advocate-1")
	activeCase := suite.kase
	activeCase.Status = models.CaseActive
	activeCase.AssignedTo = &currentAdvocate

	suite.transactionFactory.On("Transaction", ctx, mock.Anything).Return(nil)
	suite.caseRepository.On("GetCaseById", ctx, suite.transaction, "case-1").
		Return(activeCase, nil)
	suite.enforceSecurity.On("ReassignCase", activeCase).Return(nil)
	suite.advocateRepository.On("GetAdvocateById", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(advocateWithLoad("advocate-2", 0, nil).Advocate, nil)
	suite.assignmentRepository.On("GetActiveAssignment", ctx, suite.transaction, "case-1").
		Return(&models.Assignment{
			Id:         "assignment-1",
			CaseId:     "case-1",
			AdvocateId: currentAdvocate,
			AssignedAt: time.Now().Add(-10 * time.Minute),
		}, nil)
	suite.assignmentRepository.On("SupersedeActiveAssignment", ctx, suite.transaction, "case-1").
		Return(nil)
	suite.assignmentRepository.On("CreateAssignment", ctx, suite.transaction,
		mock.AnythingOfType("models.CreateAssignmentAttributes"), mock.AnythingOfType("string")).
		Return(nil)
	suite.caseRepository.On("AssignCase", ctx, suite.transaction, "case-1", 1, models.UserId("advocate-2")).
		Return(true, nil)
	suite.advocateRepository.On("TouchLastAssignedAt", ctx, suite.transaction, models.UserId("advocate-2")).
		Return(nil)
	suite.caseEventRepository.On("CreateCaseEvent", ctx, suite.transaction, mock.Anything).Return(nil)
	suite.notificationDispatcher.On("Dispatch", ctx, mock.Anything).Return()

	_, err := suite.makeUsecase(suite.adminCreds(), time.Hour).ReassignCase(ctx, "case-1", "advocate-2")

	suite.NoError(err)
}

func TestCaseAssignmentUsecase(t *testing.T) {
	suite.Run(t, new(CaseAssignmentUsecaseTestSuite))
}
