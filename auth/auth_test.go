package auth

import (
	"testing"

	"github.com/framecast-cli/framecast/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestNormalizeAddress(t *testing.T) {
	Convey("Server address normalization", t, func() {
		cases := []struct {
			in, want string
		}{
			{"media.example.com", "https://media.example.com:443"},
			{"http://media.example.com", "http://media.example.com:80"},
			{"https://media.example.com:8920/", "https://media.example.com:8920"},
			{"media.example.com:8096", "https://media.example.com:8096"},
		}

		for _, c := range cases {
			got, err := NormalizeAddress(c.in)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Invalid addresses are rejected", t, func() {
		_, err := NormalizeAddress("")
		So(err, ShouldNotBeNil)

		_, err = NormalizeAddress("ftp://media.example.com")
		So(err, ShouldNotBeNil)
	})
}

func TestNewDeviceID(t *testing.T) {
	Convey("Device ids are unique per generation", t, func() {
		a := NewDeviceID()
		b := NewDeviceID()
		So(a, ShouldNotBeEmpty)
		So(a, ShouldNotEqual, b)
	})
}
