// Package api implements the shared core of the CloudPT and MEO Cloud
// client libraries: the OAuth 1.0a session, the request dispatcher and one
// wrapper method per documented remote command. The two services speak the
// same protocol on different hosts, so the service-specific packages only
// supply endpoint definitions.
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gomodule/oauth1/oauth"
	"github.com/rs/zerolog"
)

// OutOfBand is the callback value requesting PIN-based (out-of-band)
// authorization instead of a redirect.
const OutOfBand = "oob"

// Config carries everything needed to construct a Client. ConsumerKey and
// ConsumerSecret are required; every other field has a usable default.
type Config struct {
	Service Service

	ConsumerKey    string
	ConsumerSecret string

	// Callback is the OAuth callback URL. Defaults to OutOfBand.
	Callback string

	// Root selects the target namespace. Defaults to the service's
	// production root; set it to Service.SandboxRoot for testing against
	// the sandbox area.
	Root string

	// AccessToken and AccessSecret restore a previously authorized
	// session. Leave empty for a fresh session that still needs the
	// Login/Authorize handshake.
	AccessToken  string
	AccessSecret string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Debug logs every outgoing request, including token material, at
	// debug level on Logger. Off by default; never driven by environment
	// variables.
	Debug bool

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client is a session against one cloud-storage service. It is not safe
// for concurrent use: the handshake mutates token state in place.
type Client struct {
	service Service
	oc      oauth.Client
	hc      *http.Client

	root     string
	callback string

	requestCred *oauth.Credentials
	accessCred  *oauth.Credentials

	debug bool
	log   zerolog.Logger
}

// New validates cfg and builds a Client. It fails with a validation error
// when the consumer credentials or the service definition are incomplete.
func New(cfg Config) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, &Error{Kind: ErrValidation, Op: "new", Msg: "consumer key and secret are required"}
	}
	if cfg.Service.APIHost == "" || cfg.Service.ContentHost == "" {
		return nil, &Error{Kind: ErrValidation, Op: "new", Msg: "service definition is missing its hosts"}
	}
	if cfg.Service.RequestTokenURL == "" || cfg.Service.AuthorizeURL == "" || cfg.Service.AccessTokenURL == "" {
		return nil, &Error{Kind: ErrValidation, Op: "new", Msg: "service definition is missing its OAuth endpoints"}
	}

	c := &Client{
		service: cfg.Service,
		oc: oauth.Client{
			Credentials: oauth.Credentials{
				Token:  cfg.ConsumerKey,
				Secret: cfg.ConsumerSecret,
			},
			TemporaryCredentialRequestURI: cfg.Service.RequestTokenURL,
			ResourceOwnerAuthorizationURI: cfg.Service.AuthorizeURL,
			TokenRequestURI:               cfg.Service.AccessTokenURL,
			SignatureMethod:               oauth.HMACSHA1,
		},
		hc:       cfg.HTTPClient,
		root:     cfg.Root,
		callback: cfg.Callback,
		debug:    cfg.Debug,
		log:      zerolog.Nop(),
	}
	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	if c.hc == nil {
		c.hc = http.DefaultClient
	}
	if c.root == "" {
		c.root = cfg.Service.ProductionRoot
	}
	if c.callback == "" {
		c.callback = OutOfBand
	}
	if cfg.AccessToken != "" && cfg.AccessSecret != "" {
		c.accessCred = &oauth.Credentials{Token: cfg.AccessToken, Secret: cfg.AccessSecret}
	}
	return c, nil
}

// withHTTPClient threads the configured HTTP client into ctx; the oauth
// package only looks there, its *Context variants take no client argument.
func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth.HTTPClient, c.hc)
}

// Service returns the service definition this client talks to.
func (c *Client) Service() Service { return c.service }

// Root returns the namespace the client operates in.
func (c *Client) Root() string { return c.root }

// AccessToken returns the access token pair once the handshake has
// completed, so callers can persist it across processes. ok is false
// before a successful Authorize (or restore via Config).
func (c *Client) AccessToken() (token, secret string, ok bool) {
	if c.accessCred == nil {
		return "", "", false
	}
	return c.accessCred.Token, c.accessCred.Secret, true
}

// Login performs the first handshake step: it obtains a request token from
// the service and returns the URL the user must visit to authorize the
// application. Any previous request token is replaced.
func (c *Client) Login(ctx context.Context) (string, error) {
	cred, err := c.oc.RequestTemporaryCredentialsContext(c.withHTTPClient(ctx), c.callback, nil)
	if err != nil {
		return "", &Error{Kind: ErrAuth, Op: "login", Msg: "request token exchange failed", Err: err}
	}
	c.requestCred = cred

	var extra url.Values
	if c.callback != OutOfBand {
		extra = url.Values{"oauth_callback": {c.callback}}
	}
	authURL := c.oc.AuthorizationURL(cred, extra)

	if c.debug {
		c.log.Debug().
			Str("service", c.service.Name).
			Str("request_token", cred.Token).
			Str("authorize_url", authURL).
			Msg("obtained request token")
	}
	return authURL, nil
}

// Authorize completes the handshake by exchanging the stored request token
// plus the user-supplied verifier for an access token pair. The verifier
// is the PIN shown to the user after out-of-band authorization.
func (c *Client) Authorize(ctx context.Context, verifier string) error {
	if verifier == "" {
		return &Error{Kind: ErrValidation, Op: "authorize", Msg: "verifier is required"}
	}
	if c.requestCred == nil {
		return &Error{Kind: ErrValidation, Op: "authorize", Msg: "no request token held, call Login first"}
	}

	cred, _, err := c.oc.RequestTokenContext(c.withHTTPClient(ctx), c.requestCred, verifier)
	if err != nil {
		return &Error{Kind: ErrAuth, Op: "authorize", Msg: "access token exchange failed", Err: err}
	}
	c.accessCred = cred
	c.requestCred = nil

	if c.debug {
		c.log.Debug().
			Str("service", c.service.Name).
			Str("access_token", cred.Token).
			Msg("obtained access token")
	}
	return nil
}
