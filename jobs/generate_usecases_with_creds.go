package jobs

import (
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/usecases"
)

func GenerateUsecaseWithCredForSystem(jobUsecases usecases.Usecases) usecases.UsecasesWithCreds {
	return jobUsecases.WithCreds(models.NewSystemCredentials())
}
