package services

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/logger"
)

func TestLikeTracker_Like(t *testing.T) {
	gw := &MockLikeGateway{}
	tr := NewLikeTracker(gw)

	assert.False(t, tr.Liked("doc-1"))
	assert.True(t, tr.Like(context.Background(), "doc-1", "Маяковский"))
	assert.True(t, tr.Liked("doc-1"))

	tr.Wait()
	assert.Equal(t, []domain.LikeRequest{{DocumentID: "doc-1", Query: "Маяковский"}}, gw.Calls())
}

func TestLikeTracker_Idempotent(t *testing.T) {
	gw := &MockLikeGateway{}
	tr := NewLikeTracker(gw)

	first := tr.Like(context.Background(), "doc-1", "q")
	second := tr.Like(context.Background(), "doc-1", "q")
	tr.Wait()

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, tr.Liked("doc-1"))
	assert.LessOrEqual(t, len(gw.Calls()), 2)
	assert.Equal(t, 1, tr.Count())
}

func TestLikeTracker_StateFlipsBeforeCallReturns(t *testing.T) {
	gw := &MockLikeGateway{Block: make(chan struct{}), started: make(chan struct{}, 1)}
	tr := NewLikeTracker(gw)

	tr.Like(context.Background(), "doc-1", "q")
	<-gw.started

	assert.True(t, tr.Liked("doc-1"))
	assert.Empty(t, gw.Calls())

	close(gw.Block)
	tr.Wait()
	assert.Len(t, gw.Calls(), 1)
}

func TestLikeTracker_FailureKeepsStateAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	gw := &MockLikeGateway{Err: errBoom}
	tr := NewLikeTracker(gw)

	assert.True(t, tr.Like(context.Background(), "doc-1", "q"))
	tr.Wait()

	assert.True(t, tr.Liked("doc-1"))
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "doc-1")
}

func TestLikeTracker_CancelledContextStillSends(t *testing.T) {
	gw := &MockLikeGateway{}
	tr := NewLikeTracker(gw)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr.Like(ctx, "doc-1", "q")
	tr.Wait()

	require.Len(t, gw.Calls(), 1)
}

func TestLikeTracker_EmptyID(t *testing.T) {
	gw := &MockLikeGateway{}
	tr := NewLikeTracker(gw)

	assert.False(t, tr.Like(context.Background(), "", "q"))
	tr.Wait()

	assert.Empty(t, gw.Calls())
	assert.Equal(t, 0, tr.Count())
}

func TestLikeTracker_NilGateway(t *testing.T) {
	tr := NewLikeTracker(nil)

	assert.True(t, tr.Like(context.Background(), "doc-1", "q"))
	tr.Wait()

	assert.True(t, tr.Liked("doc-1"))
}
