package eventbus

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/safety-console/pkg/logging"
)

type weekBuilt struct {
	start string
}

type recordSkipped struct {
	index int
}

func bufferedLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(level)
	return log, buf
}

func TestPublisher_NoMatchingSubscriber(t *testing.T) {
	log, buf := bufferedLogger(logrus.WarnLevel)
	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *recordSkipped) {
		t.Error("should not be called")
	})

	publisher.Publish(&weekBuilt{start: "2025-03-03"})
	require.Contains(t, buf.String(), "eventbus.Publish: no matching subscribers")
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	var got string
	publisher.Subscribe(func(e *weekBuilt) { got = e.start })

	publisher.Publish(&weekBuilt{start: "2025-03-03"})
	require.Equal(t, "2025-03-03", got)
	require.Equal(t, 1, publisher.SubscribersCount())
}

func TestPublisher_ContextAndEvent(t *testing.T) {
	publisher := NewEventPublisher(nil)
	var seen int
	publisher.Subscribe(func(ctx context.Context, e *recordSkipped) {
		require.NotNil(t, ctx)
		seen = e.index
	})
	publisher.Publish(context.Background(), &recordSkipped{index: 4})
	require.Equal(t, 4, seen)
}

func TestMatchSignature(t *testing.T) {
	require.True(t, MatchSignature(func(e *weekBuilt) {}, []interface{}{&weekBuilt{}}))
	require.False(t, MatchSignature(func(e *weekBuilt) {}, []interface{}{&recordSkipped{}}))
	require.False(t, MatchSignature(func(e *weekBuilt) {}, []interface{}{}))
	require.False(t, MatchSignature(func(e *weekBuilt) {}, []interface{}{&weekBuilt{}, &weekBuilt{}}))
	require.True(t, MatchSignature(func(ctx context.Context) {}, []interface{}{context.Background()}))
	require.True(t, MatchSignature(func(e *weekBuilt) {}, []interface{}{nil}))
	require.False(t, MatchSignature("not a func", []interface{}{}))
}

func TestPublisher_PanicRecovery(t *testing.T) {
	t.Run("panic is logged and other handlers still run", func(t *testing.T) {
		log, buf := bufferedLogger(logrus.ErrorLevel)
		publisher := NewEventPublisher(log)

		var before, after bool
		publisher.Subscribe(func(e *weekBuilt) { before = true })
		publisher.Subscribe(func(e *weekBuilt) { panic("handler 2 panic") })
		publisher.Subscribe(func(e *weekBuilt) { after = true })

		publisher.Publish(&weekBuilt{start: "2025-03-03"})
		require.True(t, before)
		require.True(t, after)
		require.Contains(t, buf.String(), "panicked")
		require.Contains(t, buf.String(), "handler 2 panic")
	})

	t.Run("all handlers panicking counts as unhandled", func(t *testing.T) {
		log, buf := bufferedLogger(logrus.WarnLevel)
		publisher := NewEventPublisher(log)
		publisher.Subscribe(func(e *weekBuilt) { panic("always panics") })

		publisher.Publish(&weekBuilt{})
		require.Contains(t, buf.String(), "no matching subscribers")
	})
}

func TestPublisher_PublishE(t *testing.T) {
	t.Run("returns ErrNoSubscribers when none match", func(t *testing.T) {
		publisher := NewEventPublisher(logrus.New()).(EventBusWithError)
		require.ErrorIs(t, publisher.PublishE(&weekBuilt{}), ErrNoSubscribers)
	})

	t.Run("joins handler errors", func(t *testing.T) {
		publisher := NewEventPublisher(nil).(EventBusWithError)
		err1 := errors.New("err1")
		err2 := errors.New("err2")
		publisher.Subscribe(func(e *weekBuilt) error { return err1 })
		publisher.Subscribe(func(e *weekBuilt) error { return err2 })
		publisher.Subscribe(func(e *weekBuilt) error { return nil })

		err := publisher.PublishE(&weekBuilt{})
		require.ErrorIs(t, err, err1)
		require.ErrorIs(t, err, err2)
	})

	t.Run("panic surfaces as error", func(t *testing.T) {
		publisher := NewEventPublisher(nil).(EventBusWithError)
		called := false
		publisher.Subscribe(func(e *weekBuilt) error { panic("boom") })
		publisher.Subscribe(func(e *weekBuilt) error { called = true; return nil })

		require.Error(t, publisher.PublishE(&weekBuilt{}))
		require.True(t, called)
	})

	t.Run("invalid handler return", func(t *testing.T) {
		publisher := NewEventPublisher(nil).(EventBusWithError)
		publisher.Subscribe(func(e *weekBuilt) int { return 1 })
		require.ErrorIs(t, publisher.PublishE(&weekBuilt{}), ErrInvalidHandlerReturn)
	})
}

func TestPublisher_UnsubscribeAndClear(t *testing.T) {
	publisher := NewEventPublisher(nil)
	var calls int
	handler := func(e *weekBuilt) { calls++ }
	other := func(e *recordSkipped) {}

	publisher.Subscribe(handler)
	publisher.Subscribe(other)
	publisher.Unsubscribe(handler)
	require.Equal(t, 1, publisher.SubscribersCount())

	publisher.Publish(&weekBuilt{})
	require.Zero(t, calls)

	publisher.Clear()
	require.Zero(t, publisher.SubscribersCount())
	require.Panics(t, func() { publisher.Subscribe("nope") })
}

func TestPublisher_ConcurrentPublish(t *testing.T) {
	publisher := NewEventPublisher(nil)
	var count atomic.Int64
	publisher.Subscribe(func(e *weekBuilt) { count.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			publisher.Publish(&weekBuilt{})
			publisher.Subscribe(func(e *recordSkipped) {})
		}()
	}
	wg.Wait()

	require.Equal(t, int64(16), count.Load())
	require.Equal(t, 17, publisher.SubscribersCount())
}
