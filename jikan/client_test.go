package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/source"
	. "github.com/smartystreets/goconvey/convey"
)

func serve(handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	return NewWith(server.URL, http.DefaultClient, 100)
}

func TestSearch(t *testing.T) {
	Convey("Having a Jikan client over a scripted upstream", t, func() {
		ctx := context.Background()

		Convey("Search hits the kind path and forwards the limit", func() {
			var gotPath, gotLimit string
			client := serve(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotLimit = r.URL.Query().Get("limit")
				_, _ = fmt.Fprint(w, `{"data": [{"mal_id": 21}, {"mal_id": 20}]}`)
			})

			items, err := client.Search(ctx, media.Anime, "one piece", 5)

			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/anime")
			So(gotLimit, ShouldEqual, "5")
			So(items, ShouldHaveLength, 2)

			var m Media
			So(json.Unmarshal(items[0], &m), ShouldBeNil)
			So(m.MalID, ShouldEqual, 21)
		})

		Convey("Manga searches use the manga path", func() {
			var gotPath string
			client := serve(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = fmt.Fprint(w, `{"data": []}`)
			})

			items, err := client.Search(ctx, media.Manga, "berserk", 5)

			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/manga")
			So(items, ShouldBeEmpty)
		})

		Convey("A 429 classifies as a rate limit", func() {
			client := serve(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			})

			_, err := client.Search(ctx, media.Anime, "naruto", 5)

			f := fault.As(err)
			So(f.Code, ShouldEqual, fault.Upstream429)
			So(f.Source, ShouldEqual, media.TagJikan)
		})

		Convey("A 500 classifies as an upstream server failure", func() {
			client := serve(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})

			_, err := client.Search(ctx, media.Anime, "naruto", 5)

			So(fault.As(err).Code, ShouldEqual, fault.Upstream5xx)
		})
	})
}

func TestFetchByID(t *testing.T) {
	Convey("Having a Jikan client over a scripted upstream", t, func() {
		ctx := context.Background()

		Convey("A present data document is returned raw", func() {
			var gotPath string
			client := serve(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = fmt.Fprint(w, `{"data": {"mal_id": 21, "title": "One Piece", "score": 8.6}}`)
			})

			raw, err := client.FetchByID(ctx, media.Anime, 21)

			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/anime/21")

			var m Media
			So(json.Unmarshal(raw, &m), ShouldBeNil)
			So(m.MalID, ShouldEqual, 21)
			So(*m.Score, ShouldEqual, 8.6)
		})

		Convey("A 404 classifies as not found", func() {
			client := serve(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			})

			_, err := client.FetchByID(ctx, media.Anime, 999999999)

			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
		})

		Convey("A null data document classifies as not found", func() {
			client := serve(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = fmt.Fprint(w, `{"data": null}`)
			})

			_, err := client.FetchByID(ctx, media.Anime, 1)

			So(fault.As(err).Code, ShouldEqual, fault.NotFound)
		})
	})
}

func TestCapabilities(t *testing.T) {
	Convey("Having any Jikan client", t, func() {
		client := NewWith("http://127.0.0.1:0", http.DefaultClient, 100)

		Convey("Trending is reported unsupported and fails locally if forced", func() {
			So(client.Supports(source.OpTrending, media.Anime), ShouldBeFalse)
			So(client.Supports(source.OpSearch, media.Anime), ShouldBeTrue)

			_, err := client.Trending(context.Background(), media.Anime, 10, nil)
			So(fault.As(err).Code, ShouldEqual, fault.InvalidArg)
		})
	})
}
