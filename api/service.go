package api

// Service describes one backing cloud-storage service: its two REST hosts
// and the three OAuth 1.0a handshake endpoints. The cloudpt and meocloud
// packages each export a ready-made definition; tests substitute their own.
type Service struct {
	// Name identifies the service, e.g. "cloudpt" or "meocloud".
	Name string

	// APIHost serves metadata and control commands.
	APIHost string

	// ContentHost serves file transfer commands (Files, Thumbnails).
	ContentHost string

	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string

	// ProductionRoot is the namespace for real storage; SandboxRoot is the
	// service's isolated test area.
	ProductionRoot string
	SandboxRoot    string
}
