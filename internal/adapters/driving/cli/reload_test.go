package cli

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLiveServices(t *testing.T) *liveServices {
	t.Helper()
	_, svc, err := buildServices()
	require.NoError(t, err)
	return newLiveServices(svc)
}

func TestLiveServices_ReloadUsesNewSettings(t *testing.T) {
	cat := &catalogue{response: sampleResponse()}
	cfg, _ := setupTestCLI(t, cat)
	live := newTestLiveServices(t)

	require.NoError(t, live.Sessions().Search(context.Background()))
	require.NoError(t, os.WriteFile(cfg, []byte("[server]\nindex = \"newspapers-1917\"\n"), 0600))
	live.reload()
	require.NoError(t, live.Sessions().Search(context.Background()))

	require.Len(t, cat.queries, 2)
	assert.Equal(t, "my-books-index", cat.queries[0]["index"])
	assert.Equal(t, "newspapers-1917", cat.queries[1]["index"])
}

func TestLiveServices_InvalidReloadKeepsCurrent(t *testing.T) {
	cat := &catalogue{response: sampleResponse()}
	cfg, _ := setupTestCLI(t, cat)
	live := newTestLiveServices(t)

	require.NoError(t, os.WriteFile(cfg, []byte("[server\n"), 0600))
	live.reload()
	require.NoError(t, live.Sessions().Search(context.Background()))

	assert.Equal(t, "my-books-index", cat.queries[0]["index"])
}

func TestLiveServices_LikesLatchAcrossReloads(t *testing.T) {
	cat := &catalogue{}
	setupTestCLI(t, cat)
	live := newTestLiveServices(t)

	assert.True(t, live.Like(context.Background(), "doc-1", "q"))
	live.reload()
	assert.True(t, live.Liked("doc-1"))
	assert.False(t, live.Like(context.Background(), "doc-1", "q"))
	live.Wait()

	assert.Len(t, cat.likes, 1)
}

func TestLiveServices_WatchReloads(t *testing.T) {
	cat := &catalogue{response: sampleResponse()}
	cfg, _ := setupTestCLI(t, cat)
	live := newTestLiveServices(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	live.watch(ctx)

	require.NoError(t, os.WriteFile(cfg, []byte("[server]\nindex = \"maps\"\n"), 0600))

	assert.Eventually(t, func() bool {
		session := live.Sessions()
		if err := session.Search(context.Background()); err != nil {
			return false
		}
		cat.mu.Lock()
		defer cat.mu.Unlock()
		return cat.queries[len(cat.queries)-1]["index"] == "maps"
	}, 5*time.Second, 50*time.Millisecond)
}
