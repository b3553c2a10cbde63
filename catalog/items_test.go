package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDisplayName(t *testing.T) {
	Convey("Season naming rule", t, func() {
		Convey("Generic season names display the series name", func() {
			w := wireItem{Name: "Season 2", SeriesName: "Cosmos"}
			So(displayName(KindSeason, w), ShouldEqual, "Cosmos")

			w = wireItem{Name: "Specials", SeriesName: "Cosmos"}
			So(displayName(KindSeason, w), ShouldEqual, "Cosmos")
		})

		Convey("Distinctive season names are kept", func() {
			w := wireItem{Name: "The Final Chapter", SeriesName: "Cosmos"}
			So(displayName(KindSeason, w), ShouldEqual, "The Final Chapter")
		})

		Convey("Other kinds always use the item name", func() {
			w := wireItem{Name: "Season of the Witch", SeriesName: "ignored"}
			So(displayName(KindMovie, w), ShouldEqual, "Season of the Witch")
		})
	})
}

func TestCollectItems(t *testing.T) {
	Convey("Listings are filtered to entries with artwork and placeholders", t, func() {
		raw := []wireItem{
			{
				ID:              "a",
				Name:            "With Art",
				Type:            "Movie",
				ImageTags:       map[string]string{"Primary": "tag"},
				ImageBlurHashes: map[string]map[string]string{"Primary": {"tag": "LEHV6nWB"}},
			},
			{ID: "b", Name: "No Art", Type: "Movie"},
			{
				ID:              "c",
				Name:            "Wrong Variant",
				Type:            "Movie",
				ImageTags:       map[string]string{"Primary": "tag"},
				ImageBlurHashes: map[string]map[string]string{"Backdrop": {"tag": "LEHV6nWB"}},
			},
		}

		items := collectItems(KindMovie, raw, ImagePrimary)
		So(len(items), ShouldEqual, 1)
		So(items[0].ID, ShouldEqual, "a")
		So(items[0].Placeholder(), ShouldEqual, "LEHV6nWB")
	})
}

func TestCollectAlbumItems(t *testing.T) {
	Convey("Audio listings collapse to one entry per album", t, func() {
		raw := []wireItem{
			{
				ID:              "t1",
				Album:           "Night Drive",
				Type:            "Audio",
				ImageTags:       map[string]string{"Primary": "tag"},
				ImageBlurHashes: map[string]map[string]string{"Primary": {"tag": "hash1"}},
			},
			{
				ID:              "t2",
				Album:           "Night Drive",
				Type:            "Audio",
				ImageTags:       map[string]string{"Primary": "tag"},
				ImageBlurHashes: map[string]map[string]string{"Primary": {"tag": "hash2"}},
			},
			{
				ID:              "t3",
				Album:           "Daylight",
				Type:            "Audio",
				ImageTags:       map[string]string{"Primary": "tag"},
				ImageBlurHashes: map[string]map[string]string{"Primary": {"tag": "hash3"}},
			},
		}

		items := collectAlbumItems(raw, ImagePrimary)
		So(len(items), ShouldEqual, 2)

		names := []string{items[0].Name, items[1].Name}
		So(names, ShouldContain, "Night Drive")
		So(names, ShouldContain, "Daylight")
	})
}

func TestLayout(t *testing.T) {
	Convey("Layout hints derive from kind and artwork variant", t, func() {
		So((&Item{Kind: KindAudio, ImageType: ImagePrimary}).Layout(), ShouldEqual, LayoutAudio)
		So((&Item{Kind: KindMovie, ImageType: ImagePrimary}).Layout(), ShouldEqual, LayoutPortrait)
		So((&Item{Kind: KindMovie, ImageType: ImageBackdrop}).Layout(), ShouldEqual, LayoutLandscape)
	})
}
