package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/util"
	"github.com/spf13/viper"
)

// Asset is the resolved display descriptor for one item: the artwork URL,
// its blur placeholder, and the caption texts.
type Asset struct {
	ImageURL string `json:"image_url"`
	Blurhash string `json:"blurhash"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
}

// ImageURL builds the artwork URL for a known artwork variant.
func (c *Client) ImageURL(itemID string, imageType ImageType) string {
	return fmt.Sprintf(
		"%s/Items/%s/Images/%s/?quality=%d&fillHeight=%d&fillWidth=%d",
		c.address,
		itemID,
		imageType,
		viper.GetInt(key.CatalogImageQuality),
		viper.GetInt(key.CatalogImageHeight),
		viper.GetInt(key.CatalogImageWidth),
	)
}

// ResolveAsset builds the display descriptor for a catalog item whose artwork
// variant is already known, without touching the network.
func (c *Client) ResolveAsset(item *Item) Asset {
	return Asset{
		ImageURL: c.ImageURL(item.ID, item.ImageType),
		Blurhash: item.Placeholder(),
		Name:     item.Name,
		Overview: item.Overview,
	}
}

// itemDetail mirrors the single-item payload consulted when the artwork
// variant is unknown, e.g. for media pushed by the telemetry stream.
type itemDetail struct {
	Name            string                       `json:"Name"`
	Overview        string                       `json:"Overview"`
	ImageTags       map[string]string            `json:"ImageTags"`
	ImageBlurHashes map[string]map[string]string `json:"ImageBlurHashes"`
}

// ResolveMediaAsset looks up an arbitrary media id and derives its display
// descriptor from the first available artwork variant.
func (c *Client) ResolveMediaAsset(ctx context.Context, mediaID string) (Asset, error) {
	endpoint := fmt.Sprintf("%s/Items/%s?api_key=%s", c.address, mediaID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Asset{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("resolve media %s: %w", mediaID, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return Asset{}, fmt.Errorf("resolve media %s: unexpected status %s", mediaID, resp.Status)
	}

	var detail itemDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return Asset{}, fmt.Errorf("decode media %s: %w", mediaID, err)
	}

	if len(detail.ImageTags) == 0 {
		return Asset{}, fmt.Errorf("no artwork available for media %s", mediaID)
	}

	variants := make([]string, 0, len(detail.ImageTags))
	for variant := range detail.ImageTags {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	variant := variants[0]

	var blurhash string
	for _, hash := range detail.ImageBlurHashes[variant] {
		blurhash = hash
		break
	}

	return Asset{
		ImageURL: c.ImageURL(mediaID, ImageType(variant)),
		Blurhash: blurhash,
		Name:     detail.Name,
		Overview: detail.Overview,
	}, nil
}
