// Package cloudpt exposes the CloudPT (SAPO) storage service through the
// shared api client.
package cloudpt

import "github.com/fmcarvalho/ptcloud/api"

// Namespace roots documented by CloudPT.
const (
	ProductionRoot = "cloudpt"
	SandboxRoot    = "sandbox"
)

// Default returns the documented CloudPT endpoints.
func Default() api.Service {
	return api.Service{
		Name:            "cloudpt",
		APIHost:         "publicapi.cloudpt.pt",
		ContentHost:     "api-content.cloudpt.pt",
		RequestTokenURL: "https://cloudpt.pt/oauth/request_token",
		AuthorizeURL:    "https://cloudpt.pt/oauth/authorize",
		AccessTokenURL:  "https://cloudpt.pt/oauth/access_token",
		ProductionRoot:  ProductionRoot,
		SandboxRoot:     SandboxRoot,
	}
}

// New builds a CloudPT client. cfg.Service may be left zero to use the
// documented endpoints.
func New(cfg api.Config) (*api.Client, error) {
	if cfg.Service.Name == "" {
		cfg.Service = Default()
	}
	return api.New(cfg)
}
