package fallback

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/retry"
	"github.com/anihelper/anihelper/source"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource scripts adapter behavior and records how often it was contacted.
type fakeSource struct {
	tag      media.SourceTag
	trending bool
	items    []json.RawMessage
	err      *fault.Fault
	calls    int
}

func (f *fakeSource) Tag() media.SourceTag { return f.tag }

func (f *fakeSource) Supports(op source.Operation, _ media.Kind) bool {
	if op == source.OpTrending {
		return f.trending
	}
	return true
}

func (f *fakeSource) Search(context.Context, media.Kind, string, int) ([]json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeSource) FetchByID(context.Context, media.Kind, int) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items[0], nil
}

func (f *fakeSource) Trending(context.Context, media.Kind, int, []string) ([]json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fastPolicy retries without real delays.
func fastPolicy() retry.Policy {
	return retry.New(3, time.Millisecond, time.Minute,
		retry.WithJitter(func() float64 { return 0 }),
		retry.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
}

func items(n int) []json.RawMessage {
	out := make([]json.RawMessage, n)
	for i := range out {
		out[i] = json.RawMessage(`{}`)
	}
	return out
}

func TestSearch(t *testing.T) {
	Convey("Selector.Search", t, func() {
		ctx := context.Background()

		Convey("Should never contact the secondary when the preferred source succeeds", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, items: items(3)}
			jikan := &fakeSource{tag: media.TagJikan, items: items(1)}
			s := NewSelector(fastPolicy(), anilist, jikan)

			results, used, err := s.Search(ctx, media.Anime, "one piece", 5, media.TagAnilist)
			So(err, ShouldBeNil)
			So(used, ShouldEqual, media.TagAnilist)
			So(results, ShouldHaveLength, 3)
			So(anilist.calls, ShouldEqual, 1)
			So(jikan.calls, ShouldEqual, 0)
		})

		Convey("Should fall back exactly once after the preferred source exhausts retries with 5xx", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, err: fault.New(media.TagAnilist, fault.Upstream5xx, "boom")}
			jikan := &fakeSource{tag: media.TagJikan, items: items(2)}
			s := NewSelector(fastPolicy(), anilist, jikan)

			results, used, err := s.Search(ctx, media.Anime, "one piece", 5, media.TagAnilist)
			So(err, ShouldBeNil)
			So(used, ShouldEqual, media.TagJikan)
			So(results, ShouldHaveLength, 2)
			So(anilist.calls, ShouldEqual, 3)
		})

		Convey("Should surface the secondary source's failure when both fail", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, err: fault.New(media.TagAnilist, fault.Upstream5xx, "anilist down")}
			jikan := &fakeSource{tag: media.TagJikan, err: fault.New(media.TagJikan, fault.Upstream429, "jikan rate limited")}
			s := NewSelector(fastPolicy(), anilist, jikan)

			_, used, err := s.Search(ctx, media.Anime, "one piece", 5, media.TagAnilist)
			So(err, ShouldNotBeNil)
			So(used, ShouldEqual, media.TagJikan)
			So(fault.As(err).Source, ShouldEqual, media.TagJikan)
			So(fault.As(err).Code, ShouldEqual, fault.Upstream429)
			// Secondary gets exactly one fallback pass (itself under the policy).
			So(jikan.calls, ShouldEqual, 3)
		})

		Convey("Should not fall back on a terminal failure", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, err: fault.New(media.TagAnilist, fault.NotFound, "nothing")}
			jikan := &fakeSource{tag: media.TagJikan, items: items(1)}
			s := NewSelector(fastPolicy(), anilist, jikan)

			_, _, err := s.Search(ctx, media.Anime, "one piece", 5, media.TagAnilist)
			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
			So(anilist.calls, ShouldEqual, 1)
			So(jikan.calls, ShouldEqual, 0)
		})

		Convey("Should reject an unknown preferred source without any network call", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, items: items(1)}
			s := NewSelector(fastPolicy(), anilist)

			_, _, err := s.Search(ctx, media.Anime, "one piece", 5, "mal")
			So(fault.As(err).Code, ShouldEqual, fault.InvalidArg)
			So(anilist.calls, ShouldEqual, 0)
		})
	})
}

func TestTrending(t *testing.T) {
	Convey("Selector.Trending", t, func() {
		ctx := context.Background()

		Convey("Should serve trending from anilist even when jikan is preferred", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, items: items(5)}
			jikan := &fakeSource{tag: media.TagJikan}
			s := NewSelector(fastPolicy(), anilist, jikan)

			results, used, err := s.Trending(ctx, media.Manga, 5, nil, media.TagJikan)
			So(err, ShouldBeNil)
			So(used, ShouldEqual, media.TagAnilist)
			So(results, ShouldHaveLength, 5)
			So(jikan.calls, ShouldEqual, 0)
		})

		Convey("Should surface a trending failure without attempting the secondary", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, err: fault.New(media.TagAnilist, fault.Upstream5xx, "down")}
			jikan := &fakeSource{tag: media.TagJikan}
			s := NewSelector(fastPolicy(), anilist, jikan)

			_, _, err := s.Trending(ctx, media.Anime, 10, nil, media.TagAnilist)
			So(fault.As(err).Source, ShouldEqual, media.TagAnilist)
			So(fault.As(err).Code, ShouldEqual, fault.Upstream5xx)
			So(jikan.calls, ShouldEqual, 0)
		})
	})
}

func TestFetchByID(t *testing.T) {
	Convey("Selector.FetchByID", t, func() {
		ctx := context.Background()

		Convey("Should report the source actually used", func() {
			anilist := &fakeSource{tag: media.TagAnilist, trending: true, err: fault.New(media.TagAnilist, fault.Timeout, "slow")}
			jikan := &fakeSource{tag: media.TagJikan, items: items(1)}
			s := NewSelector(fastPolicy(), anilist, jikan)

			_, used, err := s.FetchByID(ctx, media.Anime, 21, media.TagAnilist)
			So(err, ShouldBeNil)
			So(used, ShouldEqual, media.TagJikan)
		})
	})
}
