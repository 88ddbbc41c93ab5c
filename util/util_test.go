package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(5, "result", "results"), ShouldEqual, "5 results")
		So(Quantify(0, "result", "results"), ShouldEqual, "0 results")
	})
}

func TestMinMax(t *testing.T) {
	Convey("Min and Max", t, func() {
		So(Max(1, 3, 2), ShouldEqual, 3)
		So(Min(1, 3, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
		So(Min[int](), ShouldEqual, 0)
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(100, 1, 25), ShouldEqual, 25)
		So(Clamp(0, 1, 25), ShouldEqual, 1)
		So(Clamp(5, 1, 25), ShouldEqual, 5)
	})
}
