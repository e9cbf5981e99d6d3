package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/chronicle/internal/storage"
	storagemock "github.com/Decentr-net/chronicle/internal/storage/mock"
)

var errTest = errors.New("test")

func TestReconciler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	r := New(s, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		s.EXPECT().RecountCounters(gomock.Any()).Return(nil, errTest),
		s.EXPECT().RecountCounters(gomock.Any()).Return(&storage.Drift{PostLikes: 2, ProfileFollowers: 1}, nil),
		s.EXPECT().RecountCounters(gomock.Any()).DoAndReturn(func(context.Context) (*storage.Drift, error) {
			cancel()
			return &storage.Drift{}, nil
		}),
	)

	require.NoError(t, r.Run(ctx))

	s.EXPECT().Ping(gomock.Any()).Return(nil)

	meta, err := r.Ping(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, meta.(Meta).LastDrift)
	assert.False(t, meta.(Meta).LastRun.IsZero())
}

func TestReconciler_reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	r := New(s, time.Hour).(*reconciler)

	s.EXPECT().RecountCounters(gomock.Any()).Return(&storage.Drift{PostComments: 3, ProfilePosts: 4}, nil)
	require.NoError(t, r.reconcile(context.Background()))
	assert.EqualValues(t, 7, r.meta.LastDrift)

	s.EXPECT().RecountCounters(gomock.Any()).Return(nil, errTest)
	assert.True(t, errors.Is(r.reconcile(context.Background()), errTest))
	assert.EqualValues(t, 7, r.meta.LastDrift)
}

func TestReconciler_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := storagemock.NewMockStorage(ctrl)
	r := New(s, time.Hour)

	s.EXPECT().Ping(gomock.Any()).Return(errTest)

	_, err := r.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTest))
	assert.Equal(t, "reconciler", r.Name())
}
