package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
)

type NotificationDispatcher struct {
	mock.Mock
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, intent models.NotificationIntent) {
	d.Called(ctx, intent)
}
