package api

import "net/http"

// endpoint selects which of the service's two hosts a command targets.
type endpoint int

const (
	endpointAPI     endpoint = iota // metadata/control host
	endpointContent                 // file transfer host
)

// command is the immutable descriptor of one remote operation: the URL
// path segment it maps to, the HTTP method, the target host, and whether
// the root namespace and a caller path appear in the URL. Commands with
// pathed=false carry their arguments as query or form parameters instead.
type command struct {
	name     string
	method   string
	endpoint endpoint
	pathed   bool
}

var (
	cmdMetadata     = command{"Metadata", http.MethodGet, endpointAPI, true}
	cmdList         = command{"List", http.MethodGet, endpointAPI, true}
	cmdSearch       = command{"Search", http.MethodGet, endpointAPI, true}
	cmdShares       = command{"Shares", http.MethodPost, endpointAPI, true}
	cmdShareFolder  = command{"ShareFolder", http.MethodPost, endpointAPI, true}
	cmdListLinks    = command{"ListLinks", http.MethodGet, endpointAPI, false}
	cmdDeleteLink   = command{"DeleteLink", http.MethodPost, endpointAPI, false}
	cmdGetFile      = command{"Files", http.MethodGet, endpointContent, true}
	cmdPutFile      = command{"Files", http.MethodPost, endpointContent, true}
	cmdThumbnail    = command{"Thumbnails", http.MethodGet, endpointContent, true}
	cmdCopy         = command{"Fileops/Copy", http.MethodPost, endpointAPI, false}
	cmdCopyRef      = command{"CopyRef", http.MethodGet, endpointAPI, true}
	cmdMove         = command{"Fileops/Move", http.MethodPost, endpointAPI, false}
	cmdCreateFolder = command{"Fileops/CreateFolder", http.MethodPost, endpointAPI, false}
	cmdDelete       = command{"Fileops/Delete", http.MethodPost, endpointAPI, false}
	cmdUndelete     = command{"UndeleteTree", http.MethodPost, endpointAPI, true}
	cmdRestore      = command{"Restore", http.MethodPost, endpointAPI, true}
	cmdMedia        = command{"Media", http.MethodPost, endpointAPI, true}
	cmdRevisions    = command{"Revisions", http.MethodGet, endpointAPI, true}
	cmdDelta        = command{"Delta", http.MethodPost, endpointAPI, false}
	cmdAccountInfo  = command{"Account/Info", http.MethodGet, endpointAPI, false}
)
