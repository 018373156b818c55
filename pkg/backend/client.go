package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Client talks to the hotel REST backend. Every response is expected to carry
// the {success, data, message} envelope; anything else is a transport failure.
// Concurrent GETs for the same path are coalesced into one request, and no
// request is ever retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
	group   singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Get issues a GET and unmarshals the envelope's data into out. Identical
// in-flight GETs share one round trip; the later caller receives the same
// envelope. out may be nil when only success/failure matters.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	v, err, shared := c.group.Do(path, func() (any, error) {
		return c.do(ctx, http.MethodGet, path, nil, "")
	})
	if shared {
		c.logger.WithField("path", path).Debug("coalesced in-flight fetch")
	}
	if err != nil {
		return err
	}
	env := v.(*Envelope)
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(ErrTransport, "decode %s data: %v", path, err)
	}
	return nil
}

// PostJSON sends a JSON body and returns the envelope's message on success.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (string, error) {
	return c.send(ctx, http.MethodPost, path, body)
}

// PutJSON sends a JSON body with PUT semantics.
func (c *Client) PutJSON(ctx context.Context, path string, body any) (string, error) {
	return c.send(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE with no body.
func (c *Client) Delete(ctx context.Context, path string) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// PostForm submits form-urlencoded values (login, change-password).
func (c *Client) PostForm(ctx context.Context, path string, values url.Values) (string, error) {
	body := strings.NewReader(values.Encode())
	env, err := c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrapf(ErrTransport, "encode %s body: %v", path, err)
	}
	env, err := c.do(ctx, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*Envelope, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "build %s %s: %v", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Warn("backend request failed")
		return nil, errors.Wrapf(ErrTransport, "%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrapf(ErrTransport, "%s %s: status %d, malformed envelope: %v", method, path, resp.StatusCode, err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"success":  env.Success,
		"duration": time.Since(start),
	}).Debug("backend request completed")

	if !env.Success {
		return nil, &AppError{Message: env.Message}
	}
	return &env, nil
}
