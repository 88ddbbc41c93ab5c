package media

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		Convey("Should accept the two known kinds", func() {
			for _, s := range []string{"ANIME", "MANGA"} {
				kind, err := ParseKind(s)
				So(err, ShouldBeNil)
				So(string(kind), ShouldEqual, s)
			}
		})

		Convey("Should reject anything else", func() {
			for _, s := range []string{"", "anime", "NOVEL", "TV"} {
				_, err := ParseKind(s)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestParseTag(t *testing.T) {
	Convey("ParseTag", t, func() {
		Convey("Should accept the two known providers", func() {
			for _, s := range []string{"anilist", "jikan"} {
				tag, err := ParseTag(s)
				So(err, ShouldBeNil)
				So(string(tag), ShouldEqual, s)
			}
		})

		Convey("Should reject the local tag and unknown values", func() {
			for _, s := range []string{"", "local", "mal", "Anilist"} {
				_, err := ParseTag(s)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
