package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesSameKey(t *testing.T) {
	l := NewLocalLocker()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "u1:q1", time.Second)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, l.slots)
}

func TestLocalLockerDifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocalLocker()

	unlockA, err := l.Lock(context.Background(), "a", time.Second)
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := l.Lock(context.Background(), "b", 50*time.Millisecond)
	require.NoError(t, err)
	unlockB()
}

func TestLocalLockerTimeout(t *testing.T) {
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	defer unlock()

	_, err = l.Lock(context.Background(), "k", 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestLocalLockerContextCancel(t *testing.T) {
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Lock(ctx, "k", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalLockerUnlockIsIdempotent(t *testing.T) {
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	unlock()
	unlock()

	unlock2, err := l.Lock(context.Background(), "k", 20*time.Millisecond)
	require.NoError(t, err)
	unlock2()
}
