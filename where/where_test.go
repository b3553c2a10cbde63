package where

import (
	"os"
	"strings"
	"testing"

	"github.com/framecast-cli/framecast/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestConfig(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/framecast"), ShouldBeNil)
		defer func() { _ = os.Unsetenv(EnvConfigPath) }()

		Convey("Config resolves to the override", func() {
			So(Config(), ShouldEqual, "/custom/framecast")
		})

		Convey("Derived paths live under the override", func() {
			So(strings.HasPrefix(Logs(), "/custom/framecast"), ShouldBeTrue)
			So(strings.HasPrefix(Server(), "/custom/framecast"), ShouldBeTrue)
		})
	})
}
