package retry

import (
	"context"
	"testing"
	"time"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
	. "github.com/smartystreets/goconvey/convey"
)

// harness tracks attempts and simulated time without real delays.
type harness struct {
	clock  time.Time
	slept  []time.Duration
	policy Policy
}

func newHarness(attempts int, base, budget time.Duration) *harness {
	h := &harness{clock: time.Unix(0, 0)}
	h.policy = New(attempts, base, budget,
		WithJitter(func() float64 { return 0 }),
		WithClock(func() time.Time { return h.clock }),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			h.slept = append(h.slept, d)
			h.clock = h.clock.Add(d)
			return ctx.Err()
		}),
	)
	return h
}

func TestDo(t *testing.T) {
	Convey("Policy.Do", t, func() {
		ctx := context.Background()

		Convey("Should return immediately on success", func() {
			h := newHarness(3, 700*time.Millisecond, 15*time.Second)
			calls := 0
			err := h.policy.Do(ctx, func(context.Context) error {
				calls++
				return nil
			})
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 1)
			So(h.slept, ShouldBeEmpty)
		})

		Convey("Should run the operation at least once even with a zero attempt ceiling", func() {
			h := newHarness(0, 700*time.Millisecond, 15*time.Second)
			calls := 0
			boom := fault.New(media.TagAnilist, fault.Upstream5xx, "boom")
			err := h.policy.Do(ctx, func(context.Context) error {
				calls++
				return boom
			})
			So(err, ShouldEqual, boom)
			So(calls, ShouldEqual, 1)
			So(h.slept, ShouldBeEmpty)
		})

		Convey("Should retry retryable failures up to the attempt ceiling", func() {
			h := newHarness(3, 700*time.Millisecond, 15*time.Second)
			calls := 0
			boom := fault.New(media.TagAnilist, fault.Upstream5xx, "boom")
			err := h.policy.Do(ctx, func(context.Context) error {
				calls++
				return boom
			})
			So(err, ShouldEqual, boom)
			So(calls, ShouldEqual, 3)
		})

		Convey("Should back off exponentially", func() {
			h := newHarness(3, 700*time.Millisecond, 15*time.Second)
			_ = h.policy.Do(ctx, func(context.Context) error {
				return fault.New(media.TagAnilist, fault.Upstream429, "slow down")
			})
			So(h.slept, ShouldResemble, []time.Duration{700 * time.Millisecond, 1400 * time.Millisecond})
		})

		Convey("Should surface terminal failures without retrying", func() {
			h := newHarness(3, 700*time.Millisecond, 15*time.Second)
			calls := 0
			err := h.policy.Do(ctx, func(context.Context) error {
				calls++
				return fault.New(media.TagAnilist, fault.Upstream4xx, "bad request")
			})
			So(fault.As(err).Code, ShouldEqual, fault.Upstream4xx)
			So(calls, ShouldEqual, 1)
			So(h.slept, ShouldBeEmpty)
		})

		Convey("Should stop once the budget would be exceeded", func() {
			h := newHarness(5, time.Second, 1500*time.Millisecond)
			calls := 0
			err := h.policy.Do(ctx, func(context.Context) error {
				calls++
				return fault.New(media.TagJikan, fault.Timeout, "slow")
			})
			// First backoff (1s) fits, second (2s) would overrun the budget.
			So(calls, ShouldEqual, 2)
			So(fault.As(err).Code, ShouldEqual, fault.Timeout)
			So(fault.As(err).Source, ShouldEqual, media.TagJikan)
		})

		Convey("Should apply jitter on top of the backoff", func() {
			h := newHarness(2, time.Second, time.Minute)
			h.policy.jitter = func() float64 { return 0.5 }
			_ = h.policy.Do(ctx, func(context.Context) error {
				return fault.New(media.TagAnilist, fault.Upstream5xx, "boom")
			})
			So(h.slept, ShouldResemble, []time.Duration{1200 * time.Millisecond})
		})

		Convey("Should surface CANCELLED when the caller aborts mid-backoff", func() {
			cancelled, cancel := context.WithCancel(ctx)
			h := newHarness(3, 700*time.Millisecond, 15*time.Second)
			calls := 0
			err := h.policy.Do(cancelled, func(context.Context) error {
				calls++
				cancel()
				return fault.New(media.TagAnilist, fault.Upstream5xx, "boom")
			})
			So(calls, ShouldEqual, 1)
			So(fault.As(err).Code, ShouldEqual, fault.Cancelled)
		})
	})
}

func TestDelay(t *testing.T) {
	Convey("Policy.delay", t, func() {
		p := New(3, 700*time.Millisecond, 15*time.Second, WithJitter(func() float64 { return 0 }))

		Convey("Should double per attempt", func() {
			So(p.delay(0), ShouldEqual, 700*time.Millisecond)
			So(p.delay(1), ShouldEqual, 1400*time.Millisecond)
			So(p.delay(2), ShouldEqual, 2800*time.Millisecond)
		})
	})
}
