package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"

	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/network"
	"github.com/framecast-cli/framecast/util"
	"github.com/spf13/viper"
)

// fieldItems is the extra metadata requested with every item listing.
const fieldItems = "Overview, PremiereDate, CommunityRating, RecursiveItemCount"

// Client talks to the media server's user item and image endpoints.
type Client struct {
	address string
	apiKey  string
	userID  string
	http    *http.Client
}

// New creates a catalog client bound to a server address, access token and user.
func New(address, apiKey, userID string) *Client {
	return &Client{
		address: strings.TrimSuffix(address, "/"),
		apiKey:  apiKey,
		userID:  userID,
		http:    network.Client,
	}
}

// wireItem mirrors the server's item payload for the fields the display consumes.
type wireItem struct {
	ID                string                       `json:"Id"`
	Name              string                       `json:"Name"`
	Album             string                       `json:"Album"`
	AlbumID           string                       `json:"AlbumId"`
	SeriesName        string                       `json:"SeriesName"`
	Type              string                       `json:"Type"`
	Overview          string                       `json:"Overview"`
	ImageTags         map[string]string            `json:"ImageTags"`
	BackdropImageTags []string                     `json:"BackdropImageTags"`
	ImageBlurHashes   map[string]map[string]string `json:"ImageBlurHashes"`
}

type itemsResponse struct {
	Items []wireItem `json:"Items"`
}

// getItems performs one listing request, optionally scoped to a parent container.
func (c *Client) getItems(ctx context.Context, kind Kind, parentID string) ([]wireItem, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("fields", fieldItems)
	if parentID != "" {
		q.Set("ParentId", parentID)
	} else {
		q.Set("IncludeItemTypes", string(kind))
		q.Set("Recursive", "true")
	}

	endpoint := fmt.Sprintf("%s/Users/%s/Items?%s", c.address, c.userID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s items: unexpected status %s", kind, resp.Status)
	}

	var payload itemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s items: %w", kind, err)
	}
	return payload.Items, nil
}

// Items lists the displayable catalog entries of one kind and artwork variant.
// BoxSets are expanded into their children; audio is de-duplicated per album.
func (c *Client) Items(ctx context.Context, kind Kind, imageType ImageType) ([]Item, error) {
	raw, err := c.getItems(ctx, kind, "")
	if err != nil {
		return nil, err
	}

	if kind == KindBoxSet {
		var combined []Item
		for _, parent := range raw {
			children, err := c.getItems(ctx, kind, parent.ID)
			if err != nil {
				return nil, err
			}
			combined = append(combined, collectContainerItems(children, imageType)...)
		}
		return combined, nil
	}

	if kind == KindAudio {
		return collectAlbumItems(raw, imageType), nil
	}

	return collectItems(kind, raw, imageType), nil
}

// AllItems lists every artwork combination the display cycles through,
// concatenated and shuffled.
func (c *Client) AllItems(ctx context.Context) ([]Item, error) {
	listings := []struct {
		kind      Kind
		imageType ImageType
	}{
		{KindMovie, ImagePrimary},
		{KindSeries, ImagePrimary},
		{KindBoxSet, ImagePrimary},
		{KindSeason, ImagePrimary},
		{KindAudio, ImagePrimary},
		{KindMovie, ImageBackdrop},
		{KindSeries, ImageBackdrop},
		{KindBoxSet, ImageBackdrop},
		{KindMovie, ImageThumb},
		{KindSeries, ImageThumb},
	}

	var combined []Item
	for _, listing := range listings {
		items, err := c.Items(ctx, listing.kind, listing.imageType)
		if err != nil {
			return nil, err
		}
		log.Debugf("catalog: %s/%s yielded %s", listing.kind, listing.imageType, util.Quantify(len(items), "item", "items"))
		combined = append(combined, items...)
	}

	if viper.GetBool(key.SlideshowShuffle) {
		shuffle(combined)
	}
	return combined, nil
}

// shuffle randomizes item order in place with Fisher-Yates.
func shuffle(items []Item) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// collectItems filters a listing down to entries that carry artwork and a
// blur placeholder for the requested variant, applying the season naming rule.
func collectItems(kind Kind, raw []wireItem, imageType ImageType) []Item {
	hashKey := blurhashKey(imageType)
	var items []Item
	for _, w := range raw {
		if len(w.ImageTags) == 0 || len(w.ImageBlurHashes[hashKey]) == 0 {
			continue
		}

		items = append(items, Item{
			ID:        w.ID,
			Name:      displayName(kind, w),
			Overview:  w.Overview,
			Kind:      Kind(w.Type),
			ImageType: imageType,
			Blurhash:  w.ImageBlurHashes[hashKey],
		})
	}
	return items
}

// displayName resolves the caption for an item. Seasons named generically
// ("Season 2", "Specials") display their series name instead.
func displayName(kind Kind, w wireItem) string {
	if kind != KindSeason {
		return w.Name
	}

	lower := strings.ToLower(w.Name)
	if strings.Contains(lower, "season") || strings.Contains(lower, "special") {
		return w.SeriesName
	}
	return w.Name
}

// collectAlbumItems de-duplicates an audio listing down to one entry per album,
// preferring the track's own artwork and falling back to the album's.
func collectAlbumItems(raw []wireItem, imageType ImageType) []Item {
	hashKey := blurhashKey(imageType)

	unique := make(map[string]wireItem)
	order := make([]string, 0, len(raw))
	for _, w := range raw {
		albumKey := w.Album
		if albumKey == "" {
			albumKey = w.AlbumID
		}
		if _, seen := unique[albumKey]; !seen {
			order = append(order, albumKey)
		}
		unique[albumKey] = w
	}

	var items []Item
	for _, albumKey := range order {
		w := unique[albumKey]

		hasPrimary := w.ImageTags["Primary"] != ""
		hasBackdrop := len(w.BackdropImageTags) > 0 && len(w.ImageBlurHashes[hashKey]) > 0
		if !hasPrimary && !hasBackdrop {
			continue
		}

		items = append(items, Item{
			ID:        w.ID,
			Name:      w.Album,
			Overview:  w.Overview,
			Kind:      Kind(w.Type),
			ImageType: imageType,
			Blurhash:  w.ImageBlurHashes[hashKey],
		})
	}
	return items
}

// collectContainerItems filters the children of a BoxSet container.
func collectContainerItems(raw []wireItem, imageType ImageType) []Item {
	hashKey := blurhashKey(imageType)
	var items []Item
	for _, w := range raw {
		hasPrimary := w.ImageTags["Primary"] != ""
		hasBackdrop := len(w.BackdropImageTags) > 0 && len(w.ImageBlurHashes[hashKey]) > 0
		if !hasPrimary && !hasBackdrop {
			continue
		}

		items = append(items, Item{
			ID:        w.ID,
			Name:      w.Name,
			Overview:  w.Overview,
			Kind:      Kind(w.Type),
			ImageType: imageType,
			Blurhash:  w.ImageBlurHashes[hashKey],
		})
	}
	return items
}
