// Package catalog provides a client for the media server's item listing and artwork APIs.
package catalog

import "sort"

// Kind identifies a catalog item category as reported by the server.
type Kind string

const (
	KindMovie   Kind = "Movie"
	KindSeries  Kind = "Series"
	KindSeason  Kind = "Season"
	KindBoxSet  Kind = "BoxSet"
	KindAudio   Kind = "Audio"
	KindEpisode Kind = "Episode"
)

// ImageType identifies which artwork variant of an item to display.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageThumb    ImageType = "Thumb"
)

// Layout is the style hint derived from an item's media kind, used by the
// renderer to pick a portrait or landscape slide arrangement.
type Layout string

const (
	LayoutAudio     Layout = "audio"
	LayoutPortrait  Layout = "portrait"
	LayoutLandscape Layout = "landscape"
)

// Item is one displayable catalog entry. Items are produced by the catalog
// client and consumed read-only by the carousel.
type Item struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Overview  string            `json:"overview"`
	Kind      Kind              `json:"kind"`
	ImageType ImageType         `json:"image_type"`
	Blurhash  map[string]string `json:"blurhash"`
}

// Placeholder returns the item's blur-placeholder descriptor: the first
// available blurhash value, selected deterministically.
func (i *Item) Placeholder() string {
	if len(i.Blurhash) == 0 {
		return ""
	}
	keys := make([]string, 0, len(i.Blurhash))
	for k := range i.Blurhash {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return i.Blurhash[keys[0]]
}

// Layout derives the slide arrangement hint from the item's kind and artwork variant.
func (i *Item) Layout() Layout {
	switch {
	case i.Kind == KindAudio:
		return LayoutAudio
	case i.ImageType == ImagePrimary:
		return LayoutPortrait
	default:
		return LayoutLandscape
	}
}

// blurhashKey maps an artwork variant to the server's ImageBlurHashes map key.
func blurhashKey(t ImageType) string {
	switch t {
	case ImageBackdrop:
		return "Backdrop"
	case ImageThumb:
		return "Thumb"
	default:
		return "Primary"
	}
}
