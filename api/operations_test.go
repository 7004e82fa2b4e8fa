package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest keeps what operation tests need from each request the
// stub saw.
type capturedRequest struct {
	method      string
	path        string
	contentType string
	query       map[string]string
	form        map[string]string
	body        []byte
}

// captureServer answers every request with a small JSON object and
// records what arrived.
func captureServer(t *testing.T) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var seen []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cr := capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			query:       map[string]string{},
			form:        map[string]string{},
		}
		for k, v := range r.URL.Query() {
			cr.query[k] = v[0]
		}
		if r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
			r.ParseForm()
			for k, v := range r.PostForm {
				cr.form[k] = v[0]
			}
		} else {
			cr.body, _ = io.ReadAll(r.Body)
		}
		mu.Lock()
		seen = append(seen, cr)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), seen...)
	}
}

func captureClient(t *testing.T) (*Client, func() []capturedRequest) {
	t.Helper()
	srv, seen := captureServer(t)
	c, err := New(Config{
		Service: Service{
			Name:            "testcloud",
			APIHost:         srv.URL,
			ContentHost:     srv.URL,
			RequestTokenURL: srv.URL + "/oauth/request_token",
			AuthorizeURL:    srv.URL + "/oauth/authorize",
			AccessTokenURL:  srv.URL + "/oauth/access_token",
			ProductionRoot:  "testcloud",
			SandboxRoot:     "sandbox",
		},
		ConsumerKey:    "k",
		ConsumerSecret: "s",
		AccessToken:    "t",
		AccessSecret:   "ts",
	})
	require.NoError(t, err)
	return c, seen
}

func TestMetadataRequest(t *testing.T) {
	c, seen := captureClient(t)

	_, err := c.Metadata(context.Background(), "/Photos/logo.png", MetadataOptions{
		FileLimit:       25,
		IncludeContents: true,
	})
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].method)
	assert.Equal(t, "/1/Metadata/testcloud/Photos/logo.png", reqs[0].path)
	assert.Equal(t, "25", reqs[0].query["file_limit"])
	assert.Equal(t, "true", reqs[0].query["list"])
}

func TestSearchRequiresQuery(t *testing.T) {
	c, seen := captureClient(t)

	_, err := c.Search(context.Background(), "/", "", SearchOptions{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrValidation, apiErr.Kind)
	assert.Empty(t, seen(), "validation failures must not reach the network")

	_, err = c.Search(context.Background(), "/", "report", SearchOptions{FileLimit: 5})
	require.NoError(t, err)
	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/1/Search/testcloud", reqs[0].path)
	assert.Equal(t, "report", reqs[0].query["query"])
	assert.Equal(t, "5", reqs[0].query["file_limit"])
}

func TestFileopsForms(t *testing.T) {
	c, seen := captureClient(t)
	ctx := context.Background()

	_, err := c.Copy(ctx, "/a.txt", "/b.txt")
	require.NoError(t, err)
	_, err = c.Move(ctx, "/b.txt", "/c.txt")
	require.NoError(t, err)
	_, err = c.CreateFolder(ctx, "/new")
	require.NoError(t, err)
	_, err = c.Delete(ctx, "/c.txt")
	require.NoError(t, err)
	_, err = c.CopyFromRef(ctx, "ref123", "/d.txt")
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 5)

	assert.Equal(t, "/1/Fileops/Copy", reqs[0].path)
	assert.Equal(t, http.MethodPost, reqs[0].method)
	assert.Equal(t, map[string]string{"root": "testcloud", "from_path": "/a.txt", "to_path": "/b.txt"}, reqs[0].form)

	assert.Equal(t, "/1/Fileops/Move", reqs[1].path)
	assert.Equal(t, map[string]string{"root": "testcloud", "from_path": "/b.txt", "to_path": "/c.txt"}, reqs[1].form)

	assert.Equal(t, "/1/Fileops/CreateFolder", reqs[2].path)
	assert.Equal(t, map[string]string{"root": "testcloud", "path": "/new"}, reqs[2].form)

	assert.Equal(t, "/1/Fileops/Delete", reqs[3].path)
	assert.Equal(t, map[string]string{"root": "testcloud", "path": "/c.txt"}, reqs[3].form)

	assert.Equal(t, "/1/Fileops/Copy", reqs[4].path)
	assert.Equal(t, map[string]string{"root": "testcloud", "from_copy_ref": "ref123", "to_path": "/d.txt"}, reqs[4].form)
}

func TestDeltaCursor(t *testing.T) {
	c, seen := captureClient(t)
	ctx := context.Background()

	_, err := c.Delta(ctx, "")
	require.NoError(t, err)
	_, err = c.Delta(ctx, "cur-42")
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/1/Delta", reqs[0].path)
	assert.Empty(t, reqs[0].contentType, "cursorless delta omits the payload entirely")
	assert.Empty(t, reqs[0].body)
	assert.Equal(t, "cur-42", reqs[1].form["cursor"])
}

func TestPutFile(t *testing.T) {
	c, seen := captureClient(t)

	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}
	_, err := c.PutFile(context.Background(), "a b.png", content, PutFileOptions{NoOverwrite: true})
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].method)
	assert.Equal(t, "/1/Files/testcloud/a b.png", reqs[0].path) // server reports the decoded path
	assert.Equal(t, "false", reqs[0].query["overwrite"])
	assert.Equal(t, content, reqs[0].body)
}

func TestPutFileFrom(t *testing.T) {
	c, seen := captureClient(t)
	ctx := context.Background()

	t.Run("missing local file", func(t *testing.T) {
		_, err := c.PutFileFrom(ctx, "/x.txt", filepath.Join(t.TempDir(), "nope.txt"), PutFileOptions{})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ErrLocalIO, apiErr.Kind)
		assert.Empty(t, seen(), "local read failures must not reach the network")
	})

	t.Run("existing local file", func(t *testing.T) {
		local := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, os.WriteFile(local, []byte("hello"), 0600))

		_, err := c.PutFileFrom(ctx, "/x.txt", local, PutFileOptions{})
		require.NoError(t, err)
		reqs := seen()
		require.Len(t, reqs, 1)
		assert.Equal(t, []byte("hello"), reqs[0].body)
	})
}

func TestShareAndLinks(t *testing.T) {
	c, seen := captureClient(t)
	ctx := context.Background()

	_, err := c.Share(ctx, "/pub/report.pdf")
	require.NoError(t, err)
	_, err = c.ShareFolder(ctx, "/team", "colleague@example.pt")
	require.NoError(t, err)
	_, err = c.ListLinks(ctx)
	require.NoError(t, err)
	_, err = c.DeleteLink(ctx, "share-1")
	require.NoError(t, err)

	reqs := seen()
	require.Len(t, reqs, 4)
	assert.Equal(t, "/1/Shares/testcloud/pub/report.pdf", reqs[0].path)
	assert.Empty(t, reqs[0].contentType, "parameterless share sends no body")
	assert.Equal(t, "/1/ShareFolder/testcloud/team", reqs[1].path)
	assert.Equal(t, "colleague@example.pt", reqs[1].form["to_email"])
	assert.Equal(t, "/1/ListLinks", reqs[2].path)
	assert.Equal(t, http.MethodGet, reqs[2].method)
	assert.Equal(t, "/1/DeleteLink", reqs[3].path)
	assert.Equal(t, "share-1", reqs[3].form["shareid"])
}

func TestValidationShortCircuits(t *testing.T) {
	c, seen := captureClient(t)
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := c.GetFile(ctx, "", GetFileOptions{}); return err },
		func() error { _, err := c.PutFile(ctx, "", nil, PutFileOptions{}); return err },
		func() error { _, err := c.Copy(ctx, "", "/b"); return err },
		func() error { _, err := c.Move(ctx, "/a", ""); return err },
		func() error { _, err := c.CreateFolder(ctx, ""); return err },
		func() error { _, err := c.Delete(ctx, ""); return err },
		func() error { _, err := c.Restore(ctx, "/a", ""); return err },
		func() error { _, err := c.ShareFolder(ctx, "/a", ""); return err },
		func() error { _, err := c.DeleteLink(ctx, ""); return err },
		func() error { _, err := c.Undelete(ctx, ""); return err },
		func() error { _, err := c.Media(ctx, ""); return err },
		func() error { _, err := c.Revisions(ctx, "", RevisionsOptions{}); return err },
		func() error { _, err := c.Thumbnail(ctx, "", ThumbnailOptions{}); return err },
		func() error { _, err := c.CopyRef(ctx, ""); return err },
	}
	for i, call := range calls {
		err := call()
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr, "call %d", i)
		assert.Equal(t, ErrValidation, apiErr.Kind, "call %d", i)
	}
	assert.Empty(t, seen())
}
