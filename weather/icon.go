package weather

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"

	"skycast/parser"
)

// IconSize is the edge length of the "@2x" icons served by the provider.
const IconSize = 100

// Icon downloads and decodes the pictogram for an icon code such as "10d".
// Callers treat any error as "no icon"; nothing here is shown to the user.
func (c *Client) Icon(ctx context.Context, code string) (image.Image, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("empty icon code")
	}

	target := c.iconURL + "/" + url.PathEscape(code) + "@2x.png"
	body, status, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("icon request returned status %d", status)
	}

	img, err := parser.DecodeImage(body, IconSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", code, err)
	}
	return img, nil
}
