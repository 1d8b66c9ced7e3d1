package config

import "errors"

// ErrMissingEndpoint indicates that neither WPGRAPHQL_URL nor
// PANTHEON_CMS_ENDPOINT is set.
var ErrMissingEndpoint = errors.New("missing CMS endpoint configuration")

const (
	missingEndpointDevelopment = "No WPGRAPHQL_URL found.\n" +
		"See the README.md for information on setting this variable locally."

	missingEndpointProduction = "No CMS Endpoint found.\n" +
		"Link a CMS or set the WPGRAPHQL_URL environment variable in the settings tab in the dashboard\n" +
		"If your site does not require a backend to build, remove this check from the next.config.js."
)

// MissingEndpointError is returned by Resolve when no endpoint source is
// configured. Its message depends on the build mode.
type MissingEndpointError struct {
	Mode BuildMode
}

// Error implements the error interface.
func (e *MissingEndpointError) Error() string {
	if e.Mode == Development {
		return missingEndpointDevelopment
	}
	return missingEndpointProduction
}

// Is reports whether target is ErrMissingEndpoint.
func (e *MissingEndpointError) Is(target error) bool {
	return target == ErrMissingEndpoint
}
