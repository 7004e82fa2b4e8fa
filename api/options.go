package api

import (
	"net/url"
	"strconv"
)

// MetadataOptions tune the Metadata command. Zero values are omitted from
// the request, leaving the service's documented defaults in effect.
type MetadataOptions struct {
	// FileLimit caps the number of folder entries returned (service
	// default 10000).
	FileLimit int

	// Hash, when set to the hash returned by a previous Metadata call,
	// makes the service answer 304 if the folder is unchanged.
	Hash string

	// IncludeContents asks for the folder's entry list.
	IncludeContents bool

	// IncludeDeleted includes entries deleted since the given hash/rev.
	IncludeDeleted bool

	// Rev requests metadata for a specific revision instead of the head.
	Rev string
}

func (o MetadataOptions) values() url.Values {
	v := url.Values{}
	if o.FileLimit > 0 {
		v.Set("file_limit", strconv.Itoa(o.FileLimit))
	}
	if o.Hash != "" {
		v.Set("hash", o.Hash)
	}
	if o.IncludeContents {
		v.Set("list", "true")
	}
	if o.IncludeDeleted {
		v.Set("include_deleted", "true")
	}
	if o.Rev != "" {
		v.Set("rev", o.Rev)
	}
	return v
}

// ListOptions tune the List command.
type ListOptions struct {
	FileLimit      int
	IncludeDeleted bool
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.FileLimit > 0 {
		v.Set("file_limit", strconv.Itoa(o.FileLimit))
	}
	if o.IncludeDeleted {
		v.Set("include_deleted", "true")
	}
	return v
}

// SearchOptions tune the Search command. The query string itself is a
// required argument of Client.Search, not an option.
type SearchOptions struct {
	FileLimit      int
	IncludeDeleted bool
}

func (o SearchOptions) values() url.Values {
	v := url.Values{}
	if o.FileLimit > 0 {
		v.Set("file_limit", strconv.Itoa(o.FileLimit))
	}
	if o.IncludeDeleted {
		v.Set("include_deleted", "true")
	}
	return v
}

// GetFileOptions tune the file download command.
type GetFileOptions struct {
	// Rev downloads a specific revision instead of the head.
	Rev string
}

func (o GetFileOptions) values() url.Values {
	v := url.Values{}
	if o.Rev != "" {
		v.Set("rev", o.Rev)
	}
	return v
}

// PutFileOptions tune the file upload command.
type PutFileOptions struct {
	// NoOverwrite makes the service rename the upload instead of
	// replacing an existing file at the same path. The service default is
	// to overwrite.
	NoOverwrite bool

	// ParentRev is the revision the caller believes it is replacing; on
	// mismatch the service stores the upload under a conflict name.
	ParentRev string
}

func (o PutFileOptions) values() url.Values {
	v := url.Values{}
	if o.NoOverwrite {
		v.Set("overwrite", "false")
	}
	if o.ParentRev != "" {
		v.Set("parent_rev", o.ParentRev)
	}
	return v
}

// ThumbnailOptions tune the Thumbnails command.
type ThumbnailOptions struct {
	// Format is the image format, e.g. "jpeg" or "png".
	Format string

	// Size is one of the documented size names ("xs", "s", "m", "l",
	// "xl").
	Size string
}

func (o ThumbnailOptions) values() url.Values {
	v := url.Values{}
	if o.Format != "" {
		v.Set("format", o.Format)
	}
	if o.Size != "" {
		v.Set("size", o.Size)
	}
	return v
}

// RevisionsOptions tune the Revisions command.
type RevisionsOptions struct {
	// RevLimit caps the number of revisions returned (service default
	// 10).
	RevLimit int
}

func (o RevisionsOptions) values() url.Values {
	v := url.Values{}
	if o.RevLimit > 0 {
		v.Set("rev_limit", strconv.Itoa(o.RevLimit))
	}
	return v
}
