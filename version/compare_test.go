package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Semantic version comparison", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.3", "1.2.3", 0},
			{"1.2.4", "1.2.3", 1},
			{"0.9.9", "1.0.0", -1},
			{"2.0.0", "1.99.99", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Malformed versions fail", t, func() {
		_, err := Compare("abc", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}
