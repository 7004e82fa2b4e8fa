package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// pathReserved is the set of characters percent-encoded inside URL path
// segments. It matches what the services' own SDKs escape.
const pathReserved = " []?#@!$&'()*+,;:="

// do builds the signed URL for cmd, dispatches the request and normalizes
// the result. query is appended to the URL (GET commands), form becomes
// the urlencoded body (POST commands), content becomes an opaque body
// (file upload). Only network-level failures surface as errors; HTTP
// error statuses come back inside the Response.
func (c *Client) do(ctx context.Context, cmd command, path string, query, form url.Values, content []byte) (*Response, error) {
	target := c.commandURL(cmd, path)

	if c.debug {
		ev := c.log.Debug().
			Str("service", c.service.Name).
			Str("method", cmd.method).
			Str("url", target)
		if c.accessCred != nil {
			ev = ev.Str("oauth_token", c.accessCred.Token).
				Str("oauth_token_secret", c.accessCred.Secret)
		}
		ev.Msg("dispatching request")
	}

	var (
		resp *http.Response
		err  error
	)
	switch {
	case cmd.method == http.MethodGet:
		resp, err = c.oc.GetContext(c.withHTTPClient(ctx), c.accessCred, target, query)
	case content != nil:
		resp, err = c.postContent(ctx, target, query, content)
	case len(form) == 0:
		resp, err = c.postEmpty(ctx, target)
	default:
		resp, err = c.oc.PostContext(c.withHTTPClient(ctx), c.accessCred, target, form)
	}
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Op: cmd.name, Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Op: cmd.name, Msg: "reading response body", Err: err}
	}
	return normalizeResponse(resp.StatusCode, body), nil
}

// postContent uploads an opaque body. The body itself is excluded from
// signing by the OAuth 1.0 spec, which is what lets file uploads be signed
// at all; query parameters are signed against the query-less URL and only
// then attached, so each one is counted once in the signature base.
func (c *Client) postContent(ctx context.Context, target string, query url.Values, content []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if err := c.oc.SetAuthorizationHeader(req.Header, c.accessCred, http.MethodPost, req.URL, query); err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()
	return c.hc.Do(req)
}

// postEmpty sends a signed POST without a body. Parameterless commands
// omit the payload entirely rather than sending an empty urlencoded body.
func (c *Client) postEmpty(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return nil, err
	}
	if err := c.oc.SetAuthorizationHeader(req.Header, c.accessCred, http.MethodPost, req.URL, nil); err != nil {
		return nil, err
	}
	return c.hc.Do(req)
}

// commandURL joins scheme, host, API version, command name and, for
// pathed commands, the root namespace plus the normalized caller path.
func (c *Client) commandURL(cmd command, path string) string {
	host := c.service.APIHost
	if cmd.endpoint == endpointContent {
		host = c.service.ContentHost
	}
	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/1/")
	b.WriteString(cmd.name)
	if cmd.pathed {
		b.WriteByte('/')
		b.WriteString(c.root)
		if p := normalizePath(path); p != "" {
			b.WriteByte('/')
			b.WriteString(p)
		}
	}
	return b.String()
}

// normalizePath strips leading slashes, collapses duplicate slashes and
// percent-encodes reserved characters in every segment.
func normalizePath(path string) string {
	segments := make([]string, 0, 8)
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		segments = append(segments, escapeSegment(seg))
	}
	return strings.Join(segments, "/")
}

// escapeSegment percent-encodes the reserved set within one path segment.
// It deliberately leaves already-unreserved bytes (including UTF-8 text)
// alone; the services accept raw UTF-8 in paths.
func escapeSegment(seg string) string {
	if !strings.ContainsAny(seg, pathReserved) {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) + 8)
	for i := 0; i < len(seg); i++ {
		ch := seg[i]
		if strings.IndexByte(pathReserved, ch) >= 0 {
			fmt.Fprintf(&b, "%%%02X", ch)
		} else {
			b.WriteByte(ch)
		}
	}
	return b.String()
}
