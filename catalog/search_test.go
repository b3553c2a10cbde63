package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSearch(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "Blade Runner"},
		{ID: "2", Name: "Blade Runner 2049"},
		{ID: "3", Name: "The Running Man"},
		{ID: "4", Name: "Arrival"},
	}

	Convey("Search matches fuzzily and ranks by edit distance", t, func() {
		results := Search(items, "blade runner")
		So(len(results), ShouldEqual, 2)
		So(results[0].ID, ShouldEqual, "1")
		So(results[1].ID, ShouldEqual, "2")
	})

	Convey("Search returns nothing for a query with no matches", t, func() {
		So(Search(items, "zzzzzz"), ShouldBeEmpty)
	})

	Convey("FindClosest returns the top match as an Option", t, func() {
		So(FindClosest(items, "arrival").MustGet().ID, ShouldEqual, "4")
		So(FindClosest(items, "zzzzzz").IsAbsent(), ShouldBeTrue)
	})
}
