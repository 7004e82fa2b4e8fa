package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfc3986Encode percent-encodes s per RFC 5849 section 3.6: only ALPHA,
// DIGIT, '-', '.', '_' and '~' stay literal.
func rfc3986Encode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9',
			ch == '-', ch == '.', ch == '_', ch == '~':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}

// oauthHeaderParams parses an OAuth Authorization header into decoded
// key/value pairs.
func oauthHeaderParams(t *testing.T, header string) map[string]string {
	t.Helper()
	require.True(t, strings.HasPrefix(header, "OAuth "), "missing OAuth authorization header")
	params := map[string]string{}
	for _, part := range strings.Split(header[len("OAuth "):], ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		require.Len(t, kv, 2)
		value, err := url.QueryUnescape(strings.Trim(kv[1], `"`))
		require.NoError(t, err)
		params[kv[0]] = value
	}
	return params
}

// verifySignature recomputes the RFC 5849 HMAC-SHA1 signature for r the
// way a compliant server does: each request parameter counted exactly
// once, whether it arrived in the query string, a urlencoded body or the
// Authorization header.
func verifySignature(t *testing.T, r *http.Request, consumerSecret, tokenSecret string) bool {
	t.Helper()

	op := oauthHeaderParams(t, r.Header.Get("Authorization"))
	sig := op["oauth_signature"]
	delete(op, "oauth_signature")
	delete(op, "realm")

	var pairs []string
	add := func(k, v string) { pairs = append(pairs, rfc3986Encode(k)+"="+rfc3986Encode(v)) }
	for k, vs := range r.URL.Query() {
		for _, v := range vs {
			add(k, v)
		}
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		require.NoError(t, r.ParseForm())
		for k, vs := range r.PostForm {
			for _, v := range vs {
				add(k, v)
			}
		}
	}
	for k, v := range op {
		add(k, v)
	}
	sort.Strings(pairs)

	base := strings.ToUpper(r.Method) +
		"&" + rfc3986Encode("http://"+strings.ToLower(r.Host)+r.URL.EscapedPath()) +
		"&" + rfc3986Encode(strings.Join(pairs, "&"))

	mac := hmac.New(sha1.New, []byte(rfc3986Encode(consumerSecret)+"&"+rfc3986Encode(tokenSecret)))
	mac.Write([]byte(base))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}

// signatureServer verifies every incoming request's signature and records
// the verdicts.
func signatureServer(t *testing.T, consumerSecret, tokenSecret string) (*httptest.Server, func() []bool) {
	t.Helper()
	var mu sync.Mutex
	var verdicts []bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok := verifySignature(t, r, consumerSecret, tokenSecret)
		mu.Lock()
		verdicts = append(verdicts, ok)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []bool {
		mu.Lock()
		defer mu.Unlock()
		return append([]bool(nil), verdicts...)
	}
}

func TestRequestSignatures(t *testing.T) {
	srv, verdicts := signatureServer(t, "consumer-secret", "token-secret")
	c, err := New(Config{
		Service: Service{
			Name:            "testcloud",
			APIHost:         srv.URL,
			ContentHost:     srv.URL,
			RequestTokenURL: srv.URL + "/oauth/request_token",
			AuthorizeURL:    srv.URL + "/oauth/authorize",
			AccessTokenURL:  srv.URL + "/oauth/access_token",
			ProductionRoot:  "testcloud",
		},
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		AccessToken:    "token",
		AccessSecret:   "token-secret",
	})
	require.NoError(t, err)
	ctx := context.Background()

	// One request of each dispatch shape: GET with query options, upload
	// with query options plus an opaque body, urlencoded form POST and a
	// bodiless POST.
	_, err = c.Metadata(ctx, "/Photos/logo.png", MetadataOptions{FileLimit: 5})
	require.NoError(t, err)
	_, err = c.PutFile(ctx, "/a b.png", []byte("payload"), PutFileOptions{NoOverwrite: true, ParentRev: "abc123"})
	require.NoError(t, err)
	_, err = c.Copy(ctx, "/a.txt", "/b.txt")
	require.NoError(t, err)
	_, err = c.Share(ctx, "/pub/report.pdf")
	require.NoError(t, err)

	results := verdicts()
	require.Len(t, results, 4)
	for i, ok := range results {
		assert.True(t, ok, "request %d must carry a valid signature", i)
	}
}
