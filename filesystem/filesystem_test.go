package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwap(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("Files written through the API are visible", func() {
			So(API().WriteFile("/probe", []byte("ok"), 0644), ShouldBeNil)
			data, err := API().ReadFile("/probe")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ok")
		})
	})
}
