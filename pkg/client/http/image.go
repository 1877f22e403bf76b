package httpclient

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	custom_logger "github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/logger"
)

// ImageClient downloads images referenced by URL.
type ImageClient struct {
	*resty.Client
}

// NewImageClient returns an initialized image download client. No retry is
// configured and no credentials are attached; the request is a plain GET.
func NewImageClient(ctx context.Context) *ImageClient {
	logger, _ := custom_logger.GetZapLogger(ctx)

	r := resty.New().
		SetLogger(logger.Sugar())

	return &ImageClient{Client: r}
}

// Fetch performs a GET on rawURL and returns the complete response body.
// The HTTP status is not inspected: a non-2xx body is still returned and
// left for the downstream detection call to reject.
func (c *ImageClient) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	logger, _ := custom_logger.GetZapLogger(ctx)

	resp, err := c.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("couldn't download image %q: %w", rawURL, err)
	}

	body := resp.Body()
	logger.Debug("image downloaded",
		zap.String("url", rawURL),
		zap.Int("bytes", len(body)),
		zap.String("mimeType", mimetype.Detect(body).String()),
		zap.Int("statusCode", resp.StatusCode()))

	return body, nil
}
