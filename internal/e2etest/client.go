package e2etest

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

// Client is a cookie-jar HTTP client with goquery helpers for exercising the
// server the way a browser session would.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a client against the given base URL. The cookie jar
// ignores the Secure flag so session cookies work over plain http in tests.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 5-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 5 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// Post sends a request body with the given content type and returns the response.
func (c *Client) Post(ctx context.Context, urlPath, contentType string, body io.Reader) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.url+urlPath, body); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	req.Header.Set("Content-Type", contentType)
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// SubmitForm finds the form with the given action on the page at formURLPath,
// fills in the values, and submits it with the CSRF token the server issued.
// Redirects are followed; the final response document is returned.
func (c *Client) SubmitForm(
	ctx context.Context,
	formURLPath string,
	formActionURLPath string,
	values neturl.Values,
) (*goquery.Document, error) {
	doc, err := c.GetDoc(ctx, formURLPath)
	if err != nil {
		return nil, errors.Wrap(err, "get form document")
	}

	// Several forms may share an action, e.g. the suggested question
	// buttons next to the free-text form. Any of them carries a valid token.
	formSelector := fmt.Sprintf("form[action='%s']", formActionURLPath)
	form := doc.Find(formSelector).First()
	if form.Length() != 1 {
		return nil, errors.New("form not found", slog.String("selector", formSelector))
	}
	csrfToken, ok := form.Find("input[name=csrf_token]").Attr("value")
	if !ok {
		return nil, errors.New("csrf_token not found in form", slog.String("selector", formSelector))
	}

	formData := neturl.Values{}
	for key, vals := range values {
		formData[key] = vals
	}
	formData.Set("csrf_token", csrfToken)

	resp, err := c.Post(ctx, formActionURLPath, "application/x-www-form-urlencoded",
		strings.NewReader(formData.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "submit form")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}
