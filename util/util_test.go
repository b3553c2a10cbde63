package util

import (
	"testing"

	"github.com/framecast-cli/framecast/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify pluralizes correctly", t, func() {
		So(Quantify(1, "slide", "slides"), ShouldEqual, "1 slide")
		So(Quantify(3, "slide", "slides"), ShouldEqual, "3 slides")
		So(Quantify(0, "slide", "slides"), ShouldEqual, "0 slides")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize uppercases the first rune only", t, func() {
		So(Capitalize("catalog"), ShouldEqual, "Catalog")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("X"), ShouldEqual, "X")
	})
}

func TestMinMax(t *testing.T) {
	Convey("Min and Max handle argument lists", t, func() {
		So(Max(1, 5, 3), ShouldEqual, 5)
		So(Min(4, 2, 9), ShouldEqual, 2)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file on the virtual filesystem", t, func() {
		So(filesystem.API().WriteFile("/victim", []byte("x"), 0644), ShouldBeNil)

		Convey("Delete removes it", func() {
			So(Delete("/victim"), ShouldBeNil)
			exists, err := filesystem.API().Exists("/victim")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
