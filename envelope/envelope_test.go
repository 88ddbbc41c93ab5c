package envelope

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFail(t *testing.T) {
	Convey("Fail", t, func() {
		Convey("Should carry schemaVersion and the classified failure", func() {
			f := Fail(fault.New(media.TagJikan, fault.Upstream429, "slow down"))
			So(f.SchemaVersion, ShouldEqual, constant.SchemaVersion)
			So(f.Error.Code, ShouldEqual, fault.Upstream429)
			So(f.Error.Source, ShouldEqual, media.TagJikan)
		})

		Convey("Should fold unclassified errors into INTERNAL", func() {
			f := Fail(errors.New("panic elsewhere"))
			So(f.Error.Code, ShouldEqual, fault.Internal)
			So(f.Error.Source, ShouldEqual, media.TagLocal)
		})

		Convey("Should marshal only code, message and source", func() {
			raw := lo.Must(json.Marshal(Fail(fault.New(media.TagAnilist, fault.NotFound, "gone"))))
			var decoded map[string]any
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)
			So(decoded, ShouldContainKey, "schemaVersion")
			So(decoded, ShouldContainKey, "error")
			body := decoded["error"].(map[string]any)
			So(body, ShouldResemble, map[string]any{
				"code":    "NOT_FOUND",
				"message": "gone",
				"source":  "anilist",
			})
		})
	})
}

func TestSuccess(t *testing.T) {
	Convey("Success envelopes", t, func() {
		Convey("Search should carry its operation metadata at the top level", func() {
			env := NewSearch("one piece", media.Anime, media.TagJikan, []media.Hit{})
			raw := lo.Must(json.Marshal(env))

			var decoded map[string]any
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)
			So(decoded["schemaVersion"], ShouldEqual, constant.SchemaVersion)
			So(decoded["query"], ShouldEqual, "one piece")
			So(decoded["kind"], ShouldEqual, "ANIME")
			So(decoded["source"], ShouldEqual, "jikan")
			So(decoded, ShouldNotContainKey, "error")
		})

		Convey("Resolve should report NOT_FOUND status when no candidate matched", func() {
			env := NewResolve("nope", media.Anime, nil, []media.Hit{})
			So(env.Status, ShouldEqual, "NOT_FOUND")

			hit := media.Hit{ID: 1}
			env = NewResolve("one piece", media.Anime, &hit, []media.Hit{hit})
			So(env.Status, ShouldBeEmpty)
		})
	})
}
