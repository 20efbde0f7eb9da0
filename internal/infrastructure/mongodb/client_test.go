package mongodb

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type countingPinger struct {
	calls int
	err   error
}

func (p *countingPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	p.calls++
	return p.err
}

func TestReadyCachesPingResult(t *testing.T) {
	pinger := &countingPinger{}
	c := New(nil, pinger, time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	assert.NoError(t, c.Ready(context.Background()))
	assert.NoError(t, c.Ready(context.Background()))
	assert.Equal(t, 1, pinger.calls)

	clock = clock.Add(2 * time.Minute)
	pinger.err = errors.New("no reachable servers")
	assert.Error(t, c.Ready(context.Background()))
	assert.Equal(t, 2, pinger.calls)
}

func TestReadyAfterClose(t *testing.T) {
	c := New(nil, &countingPinger{}, 0)
	assert.NoError(t, c.Close(context.Background()))
	assert.ErrorIs(t, c.Ready(context.Background()), ErrNotConnected)
}

func TestReadyNilClient(t *testing.T) {
	var c *Client
	assert.ErrorIs(t, c.Ready(context.Background()), ErrNotConnected)

	assert.ErrorIs(t, New(nil, nil, 0).Ready(context.Background()), ErrNotConnected)
}

type blockingPinger struct {
	calls   atomic.Int32
	release chan struct{}
}

func (p *blockingPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	p.calls.Add(1)
	<-p.release
	return nil
}

func TestReadySharesOnePing(t *testing.T) {
	pinger := &blockingPinger{release: make(chan struct{})}
	c := New(nil, pinger, time.Minute)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- c.Ready(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return pinger.calls.Load() == 1 }, time.Second, time.Millisecond)

	// The ping is in flight; the cache lock must still be free.
	fresh, err := c.cached()
	assert.False(t, fresh)
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	close(pinger.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), pinger.calls.Load())
}
