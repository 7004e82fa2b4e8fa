package api

import (
	"context"
	"net/url"
	"os"
)

// Metadata returns metadata for the file or folder at path.
func (c *Client) Metadata(ctx context.Context, path string, opts MetadataOptions) (*Response, error) {
	return c.do(ctx, cmdMetadata, path, opts.values(), nil, nil)
}

// List returns the entries of the folder at path.
func (c *Client) List(ctx context.Context, path string, opts ListOptions) (*Response, error) {
	return c.do(ctx, cmdList, path, opts.values(), nil, nil)
}

// Search finds entries under path whose name matches query.
func (c *Client) Search(ctx context.Context, path, query string, opts SearchOptions) (*Response, error) {
	if query == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Search", Msg: "query is required"}
	}
	v := opts.values()
	v.Set("query", query)
	return c.do(ctx, cmdSearch, path, v, nil, nil)
}

// Share creates a public link to the file or folder at path.
func (c *Client) Share(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, cmdShares, path, nil, nil, nil)
}

// ShareFolder invites another account, identified by email, to the folder
// at path.
func (c *Client) ShareFolder(ctx context.Context, path, toEmail string) (*Response, error) {
	if toEmail == "" {
		return nil, &Error{Kind: ErrValidation, Op: "ShareFolder", Msg: "target email is required"}
	}
	form := url.Values{"to_email": {toEmail}}
	return c.do(ctx, cmdShareFolder, path, nil, form, nil)
}

// ListLinks returns all public links the account has created.
func (c *Client) ListLinks(ctx context.Context) (*Response, error) {
	return c.do(ctx, cmdListLinks, "", nil, nil, nil)
}

// DeleteLink revokes a public link by its share id.
func (c *Client) DeleteLink(ctx context.Context, shareID string) (*Response, error) {
	if shareID == "" {
		return nil, &Error{Kind: ErrValidation, Op: "DeleteLink", Msg: "share id is required"}
	}
	form := url.Values{"shareid": {shareID}}
	return c.do(ctx, cmdDeleteLink, "", nil, form, nil)
}

// GetFile downloads the file at path. The body comes back in Response.Raw
// unless the service answered with a JSON error description.
func (c *Client) GetFile(ctx context.Context, path string, opts GetFileOptions) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "GetFile", Msg: "path is required"}
	}
	return c.do(ctx, cmdGetFile, path, opts.values(), nil, nil)
}

// PutFile uploads content to path.
func (c *Client) PutFile(ctx context.Context, path string, content []byte, opts PutFileOptions) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "PutFile", Msg: "path is required"}
	}
	if content == nil {
		content = []byte{}
	}
	return c.do(ctx, cmdPutFile, path, opts.values(), nil, content)
}

// PutFileFrom uploads the local file at localPath to path. A local read
// failure is reported as an ErrLocalIO error without touching the network.
func (c *Client) PutFileFrom(ctx context.Context, path, localPath string, opts PutFileOptions) (*Response, error) {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return nil, &Error{Kind: ErrLocalIO, Op: "PutFile", Msg: "reading " + localPath, Err: err}
	}
	return c.PutFile(ctx, path, content, opts)
}

// Thumbnail downloads a thumbnail of the image at path; the bytes come
// back in Response.Raw.
func (c *Client) Thumbnail(ctx context.Context, path string, opts ThumbnailOptions) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Thumbnail", Msg: "path is required"}
	}
	return c.do(ctx, cmdThumbnail, path, opts.values(), nil, nil)
}

// Copy copies the file or folder at fromPath to toPath.
func (c *Client) Copy(ctx context.Context, fromPath, toPath string) (*Response, error) {
	if fromPath == "" || toPath == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Copy", Msg: "from and to paths are required"}
	}
	form := url.Values{
		"root":      {c.root},
		"from_path": {fromPath},
		"to_path":   {toPath},
	}
	return c.do(ctx, cmdCopy, "", nil, form, nil)
}

// CopyRef returns a reference that CopyFromRef can use to copy a file
// across accounts without transferring its content.
func (c *Client) CopyRef(ctx context.Context, path string) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "CopyRef", Msg: "path is required"}
	}
	return c.do(ctx, cmdCopyRef, path, nil, nil, nil)
}

// CopyFromRef copies the file identified by a CopyRef reference to toPath.
func (c *Client) CopyFromRef(ctx context.Context, ref, toPath string) (*Response, error) {
	if ref == "" || toPath == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Copy", Msg: "copy ref and to path are required"}
	}
	form := url.Values{
		"root":          {c.root},
		"from_copy_ref": {ref},
		"to_path":       {toPath},
	}
	return c.do(ctx, cmdCopy, "", nil, form, nil)
}

// Move moves the file or folder at fromPath to toPath.
func (c *Client) Move(ctx context.Context, fromPath, toPath string) (*Response, error) {
	if fromPath == "" || toPath == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Move", Msg: "from and to paths are required"}
	}
	form := url.Values{
		"root":      {c.root},
		"from_path": {fromPath},
		"to_path":   {toPath},
	}
	return c.do(ctx, cmdMove, "", nil, form, nil)
}

// CreateFolder creates a folder at path.
func (c *Client) CreateFolder(ctx context.Context, path string) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "CreateFolder", Msg: "path is required"}
	}
	form := url.Values{"root": {c.root}, "path": {path}}
	return c.do(ctx, cmdCreateFolder, "", nil, form, nil)
}

// Delete removes the file or folder at path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Delete", Msg: "path is required"}
	}
	form := url.Values{"root": {c.root}, "path": {path}}
	return c.do(ctx, cmdDelete, "", nil, form, nil)
}

// Undelete restores the deleted tree rooted at path.
func (c *Client) Undelete(ctx context.Context, path string) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Undelete", Msg: "path is required"}
	}
	return c.do(ctx, cmdUndelete, path, nil, nil, nil)
}

// Restore makes rev the head revision of the file at path.
func (c *Client) Restore(ctx context.Context, path, rev string) (*Response, error) {
	if path == "" || rev == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Restore", Msg: "path and rev are required"}
	}
	form := url.Values{"rev": {rev}}
	return c.do(ctx, cmdRestore, path, nil, form, nil)
}

// Media returns a direct, time-limited streaming URL for the file at path.
func (c *Client) Media(ctx context.Context, path string) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Media", Msg: "path is required"}
	}
	return c.do(ctx, cmdMedia, path, nil, nil, nil)
}

// Revisions lists the stored revisions of the file at path.
func (c *Client) Revisions(ctx context.Context, path string, opts RevisionsOptions) (*Response, error) {
	if path == "" {
		return nil, &Error{Kind: ErrValidation, Op: "Revisions", Msg: "path is required"}
	}
	return c.do(ctx, cmdRevisions, path, opts.values(), nil, nil)
}

// Delta returns the changes to the account since cursor. An empty cursor
// asks for the full state; the returned cursor resumes the stream.
func (c *Client) Delta(ctx context.Context, cursor string) (*Response, error) {
	var form url.Values
	if cursor != "" {
		form = url.Values{"cursor": {cursor}}
	}
	return c.do(ctx, cmdDelta, "", nil, form, nil)
}

// AccountInfo returns the authorized account's details and quota.
func (c *Client) AccountInfo(ctx context.Context) (*Response, error) {
	return c.do(ctx, cmdAccountInfo, "", nil, nil, nil)
}

// IsAuthorized reports whether the session's credentials are accepted by
// the service, by checking that AccountInfo answers 200.
func (c *Client) IsAuthorized(ctx context.Context) (bool, error) {
	resp, err := c.AccountInfo(ctx)
	if err != nil {
		return false, err
	}
	return resp.Code == 200, nil
}
