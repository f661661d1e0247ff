// Package proxy forwards matched gateway requests to backend services.
package proxy

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/edgecore/api-gateway/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// hopHeaders are connection-scoped and must not cross the proxy boundary.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"TE",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Forwarder relays a request to a backend target and copies the backend
// response back verbatim. Transport failures and timeouts surface as
// domain.ErrBackendUnavail so the caller answers 502 instead of hanging or
// resetting the connection.
type Forwarder struct {
	client *http.Client
	log    zerolog.Logger
}

func NewForwarder(timeout time.Duration, log zerolog.Logger) *Forwarder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Forwarder{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Forward sends the inbound request to target, preserving method, headers
// (including Authorization), path, query, and body. The backend's status is
// relayed as-is, including its own 404s.
func (f *Forwarder) Forward(c echo.Context, target string) error {
	req := c.Request()

	base, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("parse target %q: %w", target, err)
	}
	u := *base
	u.Path = req.URL.Path
	u.RawQuery = req.URL.RawQuery

	proxyReq, err := http.NewRequestWithContext(req.Context(), req.Method, u.String(), req.Body)
	if err != nil {
		return fmt.Errorf("build proxy request: %w", err)
	}
	proxyReq.Header = req.Header.Clone()
	for _, h := range hopHeaders {
		proxyReq.Header.Del(h)
	}

	resp, err := f.client.Do(proxyReq)
	if err != nil {
		f.log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("target", base.Host).
			Msg("backend unreachable")
		return domain.ErrBackendUnavail
	}
	defer resp.Body.Close()

	header := c.Response().Header()
	for k, vv := range resp.Header {
		for _, v := range vv {
			header.Add(k, v)
		}
	}
	for _, h := range hopHeaders {
		header.Del(h)
	}

	c.Response().WriteHeader(resp.StatusCode)
	if _, err := io.Copy(c.Response(), resp.Body); err != nil {
		f.log.Error().Err(err).Str("path", req.URL.Path).Msg("copy backend response")
	}
	return nil
}
