// Package meocloud exposes the MEO Cloud storage service through the
// shared api client. MEO Cloud is CloudPT's successor and speaks the same
// protocol on its own hosts.
package meocloud

import "github.com/fmcarvalho/ptcloud/api"

// Namespace roots documented by MEO Cloud.
const (
	ProductionRoot = "meocloud"
	SandboxRoot    = "sandbox"
)

// Default returns the documented MEO Cloud endpoints.
func Default() api.Service {
	return api.Service{
		Name:            "meocloud",
		APIHost:         "publicapi.meocloud.pt",
		ContentHost:     "api-content.meocloud.pt",
		RequestTokenURL: "https://meocloud.pt/oauth/request_token",
		AuthorizeURL:    "https://meocloud.pt/oauth/authorize",
		AccessTokenURL:  "https://meocloud.pt/oauth/access_token",
		ProductionRoot:  ProductionRoot,
		SandboxRoot:     SandboxRoot,
	}
}

// New builds a MEO Cloud client. cfg.Service may be left zero to use the
// documented endpoints.
func New(cfg api.Config) (*api.Client, error) {
	if cfg.Service.Name == "" {
		cfg.Service = Default()
	}
	return api.New(cfg)
}
