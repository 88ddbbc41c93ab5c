package anilist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
	. "github.com/smartystreets/goconvey/convey"
)

func serveStatus(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
}

func serveJSON(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, body)
	}))
}

func TestStatusClassification(t *testing.T) {
	Convey("Having an Anilist client over a misbehaving upstream", t, func() {
		ctx := context.Background()

		Convey("A 429 classifies as a rate limit", func() {
			server := serveStatus(http.StatusTooManyRequests)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "naruto", 5)

			f := fault.As(err)
			So(f.Code, ShouldEqual, fault.Upstream429)
			So(f.Source, ShouldEqual, media.TagAnilist)
			So(f.Code.Retryable(), ShouldBeTrue)
		})

		Convey("A 500 classifies as an upstream server failure", func() {
			server := serveStatus(http.StatusInternalServerError)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "naruto", 5)

			f := fault.As(err)
			So(f.Code, ShouldEqual, fault.Upstream5xx)
			So(f.Code.Retryable(), ShouldBeTrue)
		})

		Convey("A 400 classifies as a terminal upstream failure", func() {
			server := serveStatus(http.StatusBadRequest)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "naruto", 5)

			f := fault.As(err)
			So(f.Code, ShouldEqual, fault.Upstream4xx)
			So(f.Code.Retryable(), ShouldBeFalse)
		})

		Convey("A GraphQL error document with status 404 classifies as not found", func() {
			server := serveJSON(`{"data": null, "errors": [{"message": "Not Found.", "status": 404}]}`)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).FetchByID(ctx, media.Anime, 999999999)

			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
		})

		Convey("A malformed response body classifies as a normalization failure", func() {
			server := serveJSON(`{"data": {`)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "naruto", 5)

			So(fault.As(err).Code, ShouldEqual, fault.NormalizeError)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Having an Anilist client over a scripted upstream", t, func() {
		ctx := context.Background()

		Convey("A page of media decodes into raw items", func() {
			server := serveJSON(`{"data": {"Page": {"media": [{"id": 21}, {"id": 30013}]}}}`)
			defer server.Close()

			items, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "one piece", 5)

			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)

			var m Media
			So(json.Unmarshal(items[0], &m), ShouldBeNil)
			So(m.ID, ShouldEqual, 21)
		})

		Convey("An empty page yields no items and no error", func() {
			server := serveJSON(`{"data": {"Page": {"media": []}}}`)
			defer server.Close()

			items, err := NewWith(server.URL, http.DefaultClient).Search(ctx, media.Anime, "zzzzz", 5)

			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})
	})
}

func TestFetchByID(t *testing.T) {
	Convey("Having an Anilist client over a scripted upstream", t, func() {
		ctx := context.Background()

		Convey("A null media document classifies as not found", func() {
			server := serveJSON(`{"data": {"Media": null}}`)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).FetchByID(ctx, media.Anime, 1)

			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
		})

		Convey("A present media document is returned raw", func() {
			server := serveJSON(`{"data": {"Media": {"id": 21, "title": {"romaji": "ONE PIECE"}}}}`)
			defer server.Close()

			raw, err := NewWith(server.URL, http.DefaultClient).FetchByID(ctx, media.Anime, 21)

			So(err, ShouldBeNil)

			var m Media
			So(json.Unmarshal(raw, &m), ShouldBeNil)
			So(m.ID, ShouldEqual, 21)
			So(*m.Title.Romaji, ShouldEqual, "ONE PIECE")
		})
	})
}

func TestAiring(t *testing.T) {
	Convey("Having an Anilist client over a scripted upstream", t, func() {
		ctx := context.Background()

		Convey("ResolveFirstID returns the first match", func() {
			server := serveJSON(`{"data": {"Page": {"media": [{"id": 21}]}}}`)
			defer server.Close()

			id, err := NewWith(server.URL, http.DefaultClient).ResolveFirstID(ctx, "one piece")

			So(err, ShouldBeNil)
			So(id, ShouldEqual, 21)
		})

		Convey("ResolveFirstID classifies an empty page as not found", func() {
			server := serveJSON(`{"data": {"Page": {"media": []}}}`)
			defer server.Close()

			_, err := NewWith(server.URL, http.DefaultClient).ResolveFirstID(ctx, "zzzzz")

			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
		})

		Convey("AiringStatus decodes the schedule selection", func() {
			server := serveJSON(`{"data": {"Media": {
				"id": 21,
				"siteUrl": "https://anilist.co/anime/21",
				"title": {"romaji": "ONE PIECE"},
				"nextAiringEpisode": {"episode": 1125, "airingAt": 1756000000},
				"airingSchedule": {"nodes": [{"episode": 1124, "airingAt": 1755400000}]}
			}}}`)
			defer server.Close()

			status, err := NewWith(server.URL, http.DefaultClient).AiringStatus(ctx, 21)

			So(err, ShouldBeNil)
			So(status.NextAiringEpisode.Episode, ShouldEqual, 1125)
			So(status.AiringSchedule.Nodes, ShouldHaveLength, 1)
		})
	})
}
