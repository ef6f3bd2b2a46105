package querycache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsCanonical(t *testing.T) {
	a := Key("users", url.Values{"page": {"2"}, "search": {"ann"}, "status": {""}})
	b := Key("users", url.Values{"search": {"ann"}, "page": {"2"}})

	assert.Equal(t, a, b)
	assert.Equal(t, "users?page=2&search=ann", a)
	assert.Equal(t, "users", Key("users", nil))
}

func TestScopedKeysInvalidateAcrossScopes(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	a, b := Scope("token-a"), Scope("token-b")
	require.NotEqual(t, a, b)
	assert.Equal(t, "users", Scoped("", "users"))

	c.Set(Scoped(a, "users?page=1"), "a")
	c.Set(Scoped(b, "users?page=1"), "b")
	c.Set(Scoped(a, "vendors"), "v")

	v, ok := c.Get(Scoped(b, "users?page=1"))
	require.True(t, ok)
	assert.Equal(t, "b", v)

	c.Invalidate("users")
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get(Scoped(a, "vendors"))
	assert.True(t, ok)
}

func TestFetchDedupesConcurrentCalls(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	var calls int32
	release := make(chan struct{})
	fn := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "page", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Fetch(context.Background(), c, "users?page=1", fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give the goroutines time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "page", r)
	}

	_, err := Fetch(context.Background(), c, "users?page=1", fn)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "served from cache")
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	var calls int
	fn := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("backend down")
		}
		return 42, nil
	}

	_, err := Fetch(context.Background(), c, "orders", fn)
	require.Error(t, err)

	v, err := Fetch(context.Background(), c, "orders", fn)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestFetchCallerCancellation(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	release := make(chan struct{})
	done := make(chan struct{})
	fn := func(ctx context.Context) (string, error) {
		<-release
		close(done)
		return "late", ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Fetch(ctx, c, "couriers", fn)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	<-done
	assert.Eventually(t, func() bool {
		_, ok := c.Get("couriers")
		return ok
	}, time.Second, 10*time.Millisecond, "shared fetch completes for other waiters")
}

func TestInvalidateByResource(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	c.Set("users", 1)
	c.Set("users?page=2", 2)
	c.Set("users/abc", 3)
	c.Set("users-export", 4)
	c.Set("orders?userId=abc", 5)

	c.Invalidate("users")

	for _, k := range []string{"users", "users?page=2", "users/abc"} {
		_, ok := c.Get(k)
		assert.False(t, ok, k)
	}
	for _, k := range []string{"users-export", "orders?userId=abc"} {
		_, ok := c.Get(k)
		assert.True(t, ok, k)
	}
}

func TestInvalidateDuringFetchSkipsStore(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		<-started
		c.Invalidate("users")
		close(release)
	}()

	v, err := Fetch(context.Background(), c, "users/1", func(context.Context) (string, error) {
		close(started)
		<-release
		return "stale", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "stale", v)

	_, ok := c.Get("users/1")
	assert.False(t, ok)
}

func TestEntriesExpireAndSweep(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("vendors", "x")
	_, ok := c.Get("vendors")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("vendors")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.sweep()
	assert.Equal(t, 0, c.Len())
}
