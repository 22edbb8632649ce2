package security

import (
	"github.com/caseward/caseward-backend/models"
	"github.com/cockroachdb/errors"
)

type EnforceSecurity interface {
	Permission(permission models.Permission) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrapf(models.ForbiddenError,
			"missing permission %v for role %s", permission, e.Credentials.Role)
	}
	return nil
}
