package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/datasources/mocks"
)

func TestAsyncViewRecorder_AppliesQueuedViews(t *testing.T) {
	incrementer := mocks.NewMockArticleViewIncrementer(t)
	applied := make(chan string, 2)
	incrementer.EXPECT().IncrementArticleViews(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, articleID string) error {
			applied <- articleID
			if articleID == "a2" {
				return errors.New("connection refused")
			}
			return nil
		}).
		Times(2)

	recorder := NewAsyncViewRecorder(incrementer, 10)

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- recorder.Run(ctx) }()

	recorder.RecordView(testContext(), "a1")
	recorder.RecordView(testContext(), "a2")

	for _, want := range []string{"a1", "a2"} {
		select {
		case got := <-applied:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("view for %s was not applied", want)
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestAsyncViewRecorder_DropsWhenFullAndDrainsOnShutdown(t *testing.T) {
	incrementer := mocks.NewMockArticleViewIncrementer(t)
	incrementer.EXPECT().IncrementArticleViews(mock.Anything, "a1").Return(nil).Once()

	recorder := NewAsyncViewRecorder(incrementer, 1)
	recorder.RecordView(testContext(), "a1")
	recorder.RecordView(testContext(), "a2")

	ctx, cancel := context.WithCancel(testContext())
	cancel()
	require.NoError(t, recorder.Run(ctx))
}
