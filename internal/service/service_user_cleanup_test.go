package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/mock"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCleanupService_RemoveNotActivatedUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewUserCleanupService(users, 72*time.Hour, logger.Nop()).(*userCleanupService)
	svc.now = fixedClock
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindNotActivatedCreatedBefore(ctx, fixedNow.Add(-72*time.Hour)).
			Return([]models.User{{Login: "a"}, {Login: "b"}}, nil),
		users.EXPECT().DeleteByLogin(ctx, "a").Return(nil),
		users.EXPECT().DeleteByLogin(ctx, "b").Return(nil),
	)

	removed, err := svc.RemoveNotActivatedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestUserCleanupService_StopsOnDeleteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewUserCleanupService(users, time.Hour, logger.Nop())
	ctx := context.Background()

	users.EXPECT().FindNotActivatedCreatedBefore(ctx, gomock.Any()).
		Return([]models.User{{Login: "a"}, {Login: "b"}}, nil)
	users.EXPECT().DeleteByLogin(ctx, "a").Return(store.ErrExecutingStatement)

	removed, err := svc.RemoveNotActivatedUsers(ctx)
	require.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.Equal(t, 0, removed)
}

func TestUserCleanupService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewUserCleanupService(users, time.Hour, logger.Nop())
	users.EXPECT().FindNotActivatedCreatedBefore(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.RemoveNotActivatedUsers(context.Background())
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}
