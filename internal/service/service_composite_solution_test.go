package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/mock"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/validators"
	"github.com/MKhiriev/go-uaa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCompositeSvc(t *testing.T) (*compositeSolutionService, *mock.MockSolutionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	solutions := mock.NewMockSolutionRepository(ctrl)

	svc := NewCompositeSolutionService(solutions, logger.Nop()).(*compositeSolutionService)
	svc.now = fixedClock

	return svc, solutions
}

func compositeUpdate() models.CompositeSolutionUpdate {
	return models.CompositeSolutionUpdate{
		UUID:        "u-1",
		Name:        "Churn model",
		AuthorLogin: "john",
		Version:     "v2",
		Summary:     "Predicts churn",
	}
}

func TestCompositeSolutionService_UpdateComposite(t *testing.T) {
	svc, solutions := newTestCompositeSvc(t)
	ctx := withToken("john", models.RoleUser)
	update := compositeUpdate()

	gomock.InOrder(
		solutions.EXPECT().FindByUUID(ctx, "u-1").Return(models.Solution{ID: ptrInt64(1), UUID: "u-1", AuthorLogin: "john"}, nil),
		solutions.EXPECT().UpdateComposite(ctx, update, fixedNow).
			Return(models.Solution{ID: ptrInt64(1), UUID: "u-1", Name: "Churn model", Version: "v2"}, nil),
	)

	got, err := svc.UpdateComposite(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, "Churn model", got.Name)
}

func TestCompositeSolutionService_UpdateComposite_Admin(t *testing.T) {
	svc, solutions := newTestCompositeSvc(t)
	ctx := adminContext()
	update := compositeUpdate()

	solutions.EXPECT().FindByUUID(ctx, "u-1").Return(models.Solution{UUID: "u-1", AuthorLogin: "john"}, nil)
	solutions.EXPECT().UpdateComposite(ctx, update, fixedNow).Return(models.Solution{UUID: "u-1"}, nil)

	_, err := svc.UpdateComposite(ctx, update)
	require.NoError(t, err)
}

func TestCompositeSolutionService_UpdateComposite_Errors(t *testing.T) {
	t.Run("invalid field", func(t *testing.T) {
		svc, _ := newTestCompositeSvc(t)
		update := compositeUpdate()
		update.Name = "drop;table"

		_, err := svc.UpdateComposite(adminContext(), update)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		require.ErrorIs(t, err, validators.ErrInvalidCharacter)
	})

	t.Run("unknown uuid", func(t *testing.T) {
		svc, solutions := newTestCompositeSvc(t)
		ctx := adminContext()
		solutions.EXPECT().FindByUUID(ctx, "u-1").Return(models.Solution{}, store.ErrSolutionNotFound)

		_, err := svc.UpdateComposite(ctx, compositeUpdate())
		require.ErrorIs(t, err, ErrSolutionNotFound)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, solutions := newTestCompositeSvc(t)
		ctx := withToken("jane", models.RoleUser)
		solutions.EXPECT().FindByUUID(ctx, "u-1").Return(models.Solution{UUID: "u-1", AuthorLogin: "john"}, nil)

		_, err := svc.UpdateComposite(ctx, compositeUpdate())
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no token", func(t *testing.T) {
		svc, solutions := newTestCompositeSvc(t)
		ctx := context.Background()
		solutions.EXPECT().FindByUUID(ctx, "u-1").Return(models.Solution{UUID: "u-1", AuthorLogin: "john"}, nil)

		_, err := svc.UpdateComposite(ctx, compositeUpdate())
		require.ErrorIs(t, err, ErrForbidden)
	})
}
