// Package config resolves the front end's runtime configuration from the
// process environment.
//
// Resolution is a pure function of an Env snapshot: nothing here reads or
// writes the real process environment. Callers build the snapshot once at
// startup (ParseEnv / LoadEnviron), call Resolve, and hand the resulting
// NextConfig to the build tooling.
package config

// Recognised environment variables.
const (
	EnvGraphQLURL  = "WPGRAPHQL_URL"
	EnvCMSEndpoint = "PANTHEON_CMS_ENDPOINT"
	EnvImageDomain = "IMAGE_DOMAIN"
	EnvUploadPath  = "PANTHEON_UPLOAD_PATH"
	EnvNodeEnv     = "NODE_ENV"
)

// DefaultDotenvFile is the local-development env file read before resolution.
const DefaultDotenvFile = ".env.development.local"

// NextConfig is the resolved configuration handed to the build framework.
// Its JSON form uses the framework's option names.
type NextConfig struct {
	// BasePath is the URL prefix the site is mounted under (PANTHEON_UPLOAD_PATH).
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`

	ReactStrictMode bool `json:"reactStrictMode" yaml:"reactStrictMode"`

	// Env holds the values inlined into the client bundle.
	Env PublicEnv `json:"env" yaml:"env"`

	Images ImageOptions `json:"images" yaml:"images"`

	// Output is the build output mode; always "standalone".
	Output string `json:"output" yaml:"output"`

	// Exports lists variables derived during resolution that the caller may
	// re-export for later build steps. Never serialised.
	Exports map[string]string `json:"-" yaml:"-"`
}

// PublicEnv is the pair of URLs exposed to the front end.
type PublicEnv struct {
	// BackendURL is the absolute WPGraphQL endpoint.
	BackendURL string `json:"backendUrl" yaml:"backendUrl"`

	// ImageURL is https://<image domain>, without a trailing slash.
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
}

// OutputStandalone is the only build output mode produced.
const OutputStandalone = "standalone"

// BackendURL returns the resolved GraphQL endpoint.
func (c *NextConfig) BackendURL() string { return c.Env.BackendURL }

// ImageURL returns the resolved image base URL.
func (c *NextConfig) ImageURL() string { return c.Env.ImageURL }
