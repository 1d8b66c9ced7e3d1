package config

import (
	"fmt"
	"strings"
)

const graphQLPath = "/wp/graphql"

// Resolve derives the front-end configuration from e.
//
// WPGRAPHQL_URL wins when both endpoint sources are set. When only
// PANTHEON_CMS_ENDPOINT is set the derived endpoint is returned in
// NextConfig.Exports under WPGRAPHQL_URL so the caller can re-export it.
func Resolve(e Env) (*NextConfig, error) {
	if e.GraphQLURL == "" && e.CMSEndpoint == "" {
		return nil, &MissingEndpointError{Mode: e.Mode}
	}

	var backendURL, imageDomain string
	exports := map[string]string{}

	if e.GraphQLURL == "" {
		backendURL = fmt.Sprintf("https://%s%s", e.CMSEndpoint, graphQLPath)
		imageDomain = firstNonEmpty(e.ImageDomain, e.CMSEndpoint)
		exports[EnvGraphQLURL] = backendURL
	} else {
		backendURL = e.GraphQLURL
		imageDomain = firstNonEmpty(e.ImageDomain, imageDomainFromEndpoint(e.GraphQLURL))
	}

	// imageUrl must never carry a trailing slash.
	imageDomain = strings.TrimRight(imageDomain, "/")

	return &NextConfig{
		BasePath:        e.UploadPath,
		ReactStrictMode: true,
		Env: PublicEnv{
			BackendURL: backendURL,
			ImageURL:   "https://" + imageDomain,
		},
		Images:  DefaultImageOptions(),
		Output:  OutputStandalone,
		Exports: exports,
	}, nil
}

// imageDomainFromEndpoint strips one trailing /wp/graphql and then one
// leading http(s) scheme. It is plain string surgery, not URL parsing:
// "https://foo.bar/api" yields "foo.bar/api".
func imageDomainFromEndpoint(endpoint string) string {
	d := strings.TrimSuffix(endpoint, graphQLPath)
	if strings.HasPrefix(d, "https://") {
		return strings.TrimPrefix(d, "https://")
	}
	return strings.TrimPrefix(d, "http://")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
