package config

import (
	"fmt"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the immutable snapshot of the variables that drive resolution.
// An empty value is treated the same as an unset variable.
type Env struct {
	GraphQLURL  string    `env:"WPGRAPHQL_URL"`
	CMSEndpoint string    `env:"PANTHEON_CMS_ENDPOINT"`
	ImageDomain string    `env:"IMAGE_DOMAIN"`
	UploadPath  string    `env:"PANTHEON_UPLOAD_PATH"`
	Mode        BuildMode `env:"NODE_ENV"`
}

// BuildMode selects the wording of configuration errors.
type BuildMode int

const (
	// Production is the zero value: any NODE_ENV other than "development",
	// including an unset one, is treated as a production build.
	Production BuildMode = iota
	Development
)

// String returns the NODE_ENV spelling of m.
func (m BuildMode) String() string {
	if m == Development {
		return "development"
	}
	return "production"
}

// UnmarshalText decodes a NODE_ENV value.
func (m *BuildMode) UnmarshalText(text []byte) error {
	if string(text) == "development" {
		*m = Development
	} else {
		*m = Production
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m BuildMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseEnv builds a snapshot from a KEY=VALUE list such as os.Environ().
func ParseEnv(environ []string) (Env, error) {
	var e Env
	err := env.ParseWithOptions(&e, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// LoadEnviron returns environ extended with the variables defined in the
// dotenv file at path. Variables already present in environ win, even when
// empty. If path is empty environ is returned unchanged. A missing file is
// reported as an error satisfying errors.Is(err, fs.ErrNotExist); environ is
// still returned so callers may carry on without it.
func LoadEnviron(environ []string, path string) ([]string, error) {
	if path == "" {
		return environ, nil
	}
	fileVars, err := godotenv.Read(path)
	if err != nil {
		return environ, fmt.Errorf("read %s: %w", path, err)
	}

	present := env.ToMap(environ)
	keys := make([]string, 0, len(fileVars))
	for k := range fileVars {
		if _, ok := present[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]string, 0, len(environ)+len(keys))
	out = append(out, environ...)
	for _, k := range keys {
		out = append(out, k+"="+fileVars[k])
	}
	return out, nil
}
