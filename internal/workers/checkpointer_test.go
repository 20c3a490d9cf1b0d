// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-dgc/internal/logger"
	"github.com/MKhiriev/go-dgc/internal/mock"
	"github.com/MKhiriev/go-dgc/internal/store"
	"github.com/MKhiriev/go-dgc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCheckpointer(t *testing.T, interval time.Duration) (*SequenceCheckpointer, *store.SequenceTable, *mock.MockSequenceRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSequenceRepository(ctrl)
	sequences := store.NewSequenceTable(4)

	c, err := NewSequenceCheckpointer(sequences, repo, interval, testRetention, logger.Nop())
	require.NoError(t, err)
	c.now = func() time.Time { return t0 }

	return c, sequences, repo
}

func TestNewSequenceCheckpointer_InvalidInterval(t *testing.T) {
	_, err := NewSequenceCheckpointer(store.NewSequenceTable(1), nil, 0, testRetention, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSequenceCheckpointer_Restore(t *testing.T) {
	c, sequences, repo := newTestCheckpointer(t, time.Second)
	a, id := testVMID(1), testObjectID(1)

	repo.EXPECT().LoadMarks(gomock.Any()).Return([]models.SequenceMark{
		{VMID: a, ObjectID: id, SequenceNum: 9, LastSeen: t0},
	}, nil)

	require.NoError(t, c.Restore(context.Background()))

	seq, ok := sequences.Mark(a, id)
	require.True(t, ok)
	assert.Equal(t, int64(9), seq)

	// a replay of an old call is still rejected after the restart
	assert.False(t, sequences.Accept(a, id, 9, false, t0))
}

func TestSequenceCheckpointer_Restore_Error(t *testing.T) {
	c, _, repo := newTestCheckpointer(t, time.Second)
	dbErr := errors.New("db down")

	repo.EXPECT().LoadMarks(gomock.Any()).Return(nil, dbErr)

	err := c.Restore(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestSequenceCheckpointer_Checkpoint(t *testing.T) {
	c, sequences, repo := newTestCheckpointer(t, time.Second)
	a, id := testVMID(1), testObjectID(1)
	require.True(t, sequences.Accept(a, id, 3, true, t0))

	gomock.InOrder(
		repo.EXPECT().SaveMarks(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, marks []models.SequenceMark) error {
			require.Len(t, marks, 1)
			assert.Equal(t, int64(3), marks[0].SequenceNum)
			assert.True(t, marks[0].Keep)
			return nil
		}),
		repo.EXPECT().DeleteMarksBefore(gomock.Any(), t0.Add(-testRetention.Sequence), t0.Add(-testRetention.Strong)).Return(int64(2), nil),
	)

	require.NoError(t, c.Checkpoint(context.Background()))
}

func TestSequenceCheckpointer_Checkpoint_SaveError(t *testing.T) {
	c, _, repo := newTestCheckpointer(t, time.Second)
	dbErr := errors.New("db down")

	repo.EXPECT().SaveMarks(gomock.Any(), gomock.Any()).Return(dbErr)

	assert.ErrorIs(t, c.Checkpoint(context.Background()), dbErr)
}

func TestSequenceCheckpointer_Run_WritesFinalCheckpoint(t *testing.T) {
	c, _, repo := newTestCheckpointer(t, time.Hour)

	saved := make(chan struct{})
	repo.EXPECT().SaveMarks(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ []models.SequenceMark) error {
		assert.NoError(t, ctx.Err(), "the final checkpoint must not run on a cancelled context")
		close(saved)
		return nil
	})
	repo.EXPECT().DeleteMarksBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, c.Run(ctx))

	select {
	case <-saved:
	default:
		t.Fatal("final checkpoint was not written")
	}
}

func TestSequenceCheckpointer_Run_Periodic(t *testing.T) {
	c, _, repo := newTestCheckpointer(t, 5*time.Millisecond)

	repo.EXPECT().SaveMarks(gomock.Any(), gomock.Any()).Return(nil).MinTimes(2)
	repo.EXPECT().DeleteMarksBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	require.NoError(t, c.Run(ctx))
}
