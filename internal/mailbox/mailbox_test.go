package mailbox_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/mailbox"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMailbox(t *testing.T, poll time.Duration) (*mailbox.Mailbox, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mailbox.New(logger, client, time.Hour, poll), mr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lastOrder:s1", mailbox.Key("lastOrder", "s1"))
}

func TestMailbox_PostTake(t *testing.T) {
	mb, mr := setupMailbox(t, time.Second)
	ctx := context.Background()

	require.NoError(t, mb.Post(ctx, "lastOrder:s1", []byte(`{"orderNumber":"ON-2"}`)))
	assert.True(t, mr.Exists("lastOrder:s1"))
	assert.Equal(t, time.Hour, mr.TTL("lastOrder:s1"))

	data, ok, err := mb.Take(ctx, "lastOrder:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"orderNumber":"ON-2"}`, string(data))
	assert.False(t, mr.Exists("lastOrder:s1"))

	_, ok, err = mb.Take(ctx, "lastOrder:s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMailbox_WatchDeliversOnce(t *testing.T) {
	mb, mr := setupMailbox(t, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delivered atomic.Int32
	var got []byte
	var mu sync.Mutex
	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mb.Watch(ctx, "lastOrder:s1", func(payload []byte) {
				delivered.Add(1)
				mu.Lock()
				got = payload
				mu.Unlock()
			})
		}()
	}

	require.NoError(t, mb.Post(ctx, "lastOrder:s1", []byte("ON-2")))

	assert.Eventually(t, func() bool { return delivered.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), delivered.Load())
	assert.False(t, mr.Exists("lastOrder:s1"))

	mu.Lock()
	assert.Equal(t, "ON-2", string(got))
	mu.Unlock()

	cancel()
	wg.Wait()
}

func TestMailbox_WatchPicksUpExistingPayload(t *testing.T) {
	mb, _ := setupMailbox(t, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, mb.Post(ctx, "lastOrder:s2", []byte("early")))

	received := make(chan string, 1)
	go mb.Watch(ctx, "lastOrder:s2", func(payload []byte) {
		received <- string(payload)
	})

	select {
	case payload := <-received:
		assert.Equal(t, "early", payload)
	case <-time.After(time.Second):
		t.Fatal("payload was not delivered")
	}
}

func TestMailbox_WatchStopsOnCancel(t *testing.T) {
	mb, _ := setupMailbox(t, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		mb.Watch(ctx, "lastOrder:s3", func([]byte) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}
