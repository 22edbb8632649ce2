package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseward/caseward-backend/models"
)

func makeEnforceCase(creds models.Credentials) *EnforceSecurityCaseImpl {
	return &EnforceSecurityCaseImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: creds},
		Credentials:     creds,
	}
}

func caseAssignedTo(advocateId models.UserId) models.Case {
	return models.Case{
		Id:         "case-1",
		ClientId:   "client-1",
		AssignedTo: &advocateId,
		Status:     models.CaseActive,
	}
}

func TestEnforceSecurityCase_ReadCase(t *testing.T) {
	kase := caseAssignedTo("advocate-1")

	t.Run("owning client reads its case", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "client-1"},
			Role:          models.CLIENT,
		})
		assert.NoError(t, e.ReadCase(kase))
	})

	t.Run("unrelated client is rejected", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "client-2"},
			Role:          models.CLIENT,
		})
		assert.ErrorIs(t, e.ReadCase(kase), models.ForbiddenError)
	})

	t.Run("system reads everything", func(t *testing.T) {
		e := makeEnforceCase(models.NewSystemCredentials())
		assert.NoError(t, e.ReadCase(kase))
	})
}

func TestEnforceSecurityCase_TransitionCase(t *testing.T) {
	kase := caseAssignedTo("advocate-1")

	t.Run("assigned advocate resolves", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-1"},
			Role:          models.ADVOCATE,
		})
		assert.NoError(t, e.TransitionCase(kase, models.CaseResolved))
	})

	t.Run("other advocate may not touch the case", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-2"},
			Role:          models.ADVOCATE,
		})
		assert.ErrorIs(t, e.TransitionCase(kase, models.CaseResolved), models.ForbiddenError)
	})

	t.Run("clients lack the transition permission", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "client-1"},
			Role:          models.CLIENT,
		})
		assert.ErrorIs(t, e.TransitionCase(kase, models.CaseResolved), models.ForbiddenError)
	})

	t.Run("cancelling an active case needs an admin", func(t *testing.T) {
		advocate := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-1"},
			Role:          models.ADVOCATE,
		})
		assert.ErrorIs(t, advocate.TransitionCase(kase, models.CaseCancelled), models.ForbiddenError)

		admin := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "admin-1"},
			Role:          models.ADMIN,
		})
		assert.NoError(t, admin.TransitionCase(kase, models.CaseCancelled))
	})
}

func TestEnforceSecurityCase_ReassignCase(t *testing.T) {
	kase := caseAssignedTo("advocate-1")

	t.Run("admin reassigns", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "admin-1"},
			Role:          models.ADMIN,
		})
		assert.NoError(t, e.ReassignCase(kase))
	})

	t.Run("assigned advocate hands over", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-1"},
			Role:          models.ADVOCATE,
		})
		assert.NoError(t, e.ReassignCase(kase))
	})

	t.Run("other advocate may not", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-2"},
			Role:          models.ADVOCATE,
		})
		assert.ErrorIs(t, e.ReassignCase(kase), models.ForbiddenError)
	})

	t.Run("clients never reassign", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "client-1"},
			Role:          models.CLIENT,
		})
		assert.ErrorIs(t, e.ReassignCase(kase), models.ForbiddenError)
	})
}

func TestEnforceSecurityCase_UpdateScanStatus(t *testing.T) {
	t.Run("system and admin may record verdicts", func(t *testing.T) {
		assert.NoError(t, makeEnforceCase(models.NewSystemCredentials()).UpdateScanStatus())
		assert.NoError(t, makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "admin-1"},
			Role:          models.ADMIN,
		}).UpdateScanStatus())
	})

	t.Run("advocates may not", func(t *testing.T) {
		e := makeEnforceCase(models.Credentials{
			ActorIdentity: models.Identity{UserId: "advocate-1"},
			Role:          models.ADVOCATE,
		})
		assert.ErrorIs(t, e.UpdateScanStatus(), models.ForbiddenError)
	})
}
