package postgres

import (
	"context"
	"errors"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsBothWrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	b := newBusiness("Transaccional", func(b *entity.Business) { b.IsApproved = false })
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewBusinessRepository().Create(ctx, b); err != nil {
			return err
		}

		return f.NewSubmissionRepository().Create(ctx, &entity.Submission{BusinessID: b.ID, SpecialRequest: "Hola"})
	})
	require.NoError(t, err)

	sub, err := NewSubmissionRepository(db).FindByBusinessID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "Hola", sub.SpecialRequest)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	b := newBusiness("Revertido")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewBusinessRepository().Create(ctx, b); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewBusinessRepository(db).FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}
