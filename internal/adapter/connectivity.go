package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
)

type httpConnectivityChecker struct {
	client   *utils.HTTPClient
	probeURL string
	logger   *logger.Logger
}

// NewHTTPConnectivityChecker returns a [ConnectivityChecker] that sends a
// HEAD request to probeURL. Any HTTP response means online; a transport
// error or timeout means offline.
func NewHTTPConnectivityChecker(probeURL string, timeout time.Duration, logger *logger.Logger) ConnectivityChecker {
	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)
	return &httpConnectivityChecker{client: client, probeURL: probeURL, logger: logger}
}

// Online implements [ConnectivityChecker].
func (c *httpConnectivityChecker) Online(ctx context.Context) bool {
	_, err := c.client.R().SetContext(ctx).Head(c.probeURL)
	if err != nil {
		c.logger.WithRunID(ctx).Debug().Err(err).Str("probe", c.probeURL).Msg("connectivity probe failed")
		return false
	}
	return true
}

// AlwaysOnline is a [ConnectivityChecker] for stores that need no network.
type AlwaysOnline struct{}

// Online implements [ConnectivityChecker].
func (AlwaysOnline) Online(context.Context) bool { return true }
