package stats_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webtools/internal/stats"
	"github.com/dmitrymomot/webtools/pkg/useragent"
)

const (
	firefoxUA = "Mozilla/5.0 (Windows; U; Windows NT 6.1; fr; rv:1.9.2.13) Gecko/20101203 Firefox/3.6.13"
	chromeUA  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_6_6) AppleWebKit/534.24 (KHTML, like Gecko) Chrome/11.0.696.0 Safari/534.24"
	botUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestClassOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ua   useragent.UserAgent
		want stats.Class
	}{
		{useragent.Parse(firefoxUA), stats.ClassBrowser},
		{useragent.Parse(botUA), stats.ClassBot},
		{useragent.Parse(""), stats.ClassUnknown},
		{useragent.New("", "applewebkit", "", "webkit", ""), stats.ClassOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stats.ClassOf(tt.ua), tt.ua.Raw())
	}
}

func recordFixtures(t *testing.T, rec stats.Recorder) {
	t.Helper()
	ctx := context.Background()
	for _, raw := range []string{firefoxUA, firefoxUA, chromeUA, botUA, "curl-ish thing"} {
		require.NoError(t, rec.Record(ctx, useragent.Parse(raw)))
	}
}

func assertFixtureSnapshot(t *testing.T, snap stats.Snapshot) {
	t.Helper()
	assert.Equal(t, int64(5), snap.Total)
	assert.Equal(t, map[stats.Class]int64{
		stats.ClassBrowser: 3,
		stats.ClassBot:     1,
		stats.ClassUnknown: 1,
	}, snap.Classes)
	assert.Equal(t, map[string]int64{"firefox": 2, "chrome": 1, "googlebot": 1}, snap.Families)
	assert.Equal(t, map[string]int64{"Windows 7": 2, "Mac OS X": 1}, snap.OperatingSystems)
}

func TestMemoryRecorder(t *testing.T) {
	t.Parallel()

	rec := stats.NewMemoryRecorder()
	recordFixtures(t, rec)

	snap, err := rec.Snapshot(context.Background())
	require.NoError(t, err)
	assertFixtureSnapshot(t, snap)

	assert.NoError(t, rec.Ping(context.Background()))
	assert.NoError(t, rec.Close())
}

func TestMemoryRecorder_EmptySnapshot(t *testing.T) {
	t.Parallel()

	snap, err := stats.NewMemoryRecorder().Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Total)
	assert.NotNil(t, snap.Classes)
	assert.Empty(t, snap.Families)
}

func TestMemoryRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	rec := stats.NewMemoryRecorder()
	ua := useragent.Parse(chromeUA)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rec.Record(context.Background(), ua)
		}()
	}
	wg.Wait()

	snap, err := rec.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(50), snap.Total)
	assert.Equal(t, int64(50), snap.Families["chrome"])
}

func TestMemoryRecorder_BoundedOSKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := stats.NewMemoryRecorder()
	for i := range 200 {
		for j := range 25 {
			raw := fmt.Sprintf("Mozilla/5.0 (Linux; U; Android 4.%d.%d; en-us) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30", i, j)
			require.NoError(t, rec.Record(ctx, useragent.Parse(raw)))
		}
	}
	long := "Mozilla/5.0 (Linux; Android 1" + strings.Repeat(".1", 1000) + ") AppleWebKit/534.30"
	require.NoError(t, rec.Record(ctx, useragent.Parse(long)))

	snap, err := rec.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5001), snap.Total)
	// 4.0 through 4.99, plus the fold for three-digit minors.
	assert.Len(t, snap.OperatingSystems, 102)
	assert.Equal(t, int64(25), snap.OperatingSystems["Android 4.7"])
	assert.Equal(t, int64(100*25), snap.OperatingSystems["Android 4"])
	assert.Equal(t, int64(1), snap.OperatingSystems["Android 1.1"])
	for label := range snap.OperatingSystems {
		assert.LessOrEqual(t, len(label), len("Android 99.99"))
	}
}

func TestMemoryRecorder_OversizedLabels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := stats.NewMemoryRecorder()
	huge := strings.Repeat("x", 200)
	require.NoError(t, rec.Record(ctx, useragent.New("", huge, "", "", huge)))
	require.NoError(t, rec.Record(ctx, useragent.New("", "firefox", "", "", "Android 100.1")))

	snap, err := rec.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"other": 1, "firefox": 1}, snap.Families)
	assert.Equal(t, map[string]int64{"other": 1, "Android": 1}, snap.OperatingSystems)
}

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rec, err := stats.New(ctx, stats.Config{Backend: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &stats.MemoryRecorder{}, rec)

	rec, err = stats.New(ctx, stats.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &stats.MemoryRecorder{}, rec)

	_, err = stats.New(ctx, stats.Config{Backend: "cassandra"}, nil)
	assert.ErrorIs(t, err, stats.ErrUnknownBackend)
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		_, err := stats.Connect(context.Background(), stats.RedisConfig{ConnectionURL: "http://nope"}, nil)
		assert.ErrorIs(t, err, stats.ErrFailedToParseRedisURL)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := stats.Connect(context.Background(), stats.RedisConfig{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		}, nil)
		assert.ErrorIs(t, err, stats.ErrRedisNotReady)
	})
}

// Runs against a real server when REDIS_URL is set.
func TestRedisRecorder(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := stats.Connect(ctx, stats.RedisConfig{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)

	key := fmt.Sprintf("uaclassify:test:%s", uuid.NewString())
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key).Err()
		_ = client.Close()
	})

	rec := stats.NewRedisRecorder(client, key)
	require.NoError(t, rec.Ping(ctx))
	recordFixtures(t, rec)

	snap, err := rec.Snapshot(ctx)
	require.NoError(t, err)
	assertFixtureSnapshot(t, snap)
}
