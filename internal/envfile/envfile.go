// Package envfile writes the variables derived during configuration
// resolution to a shared env file so later build steps can source them.
//
// Directory layout (default disabled, typically a shared build volume):
//
//	<dir>/cms.env   KEY="VALUE" pairs, sorted by key
//
// Build scripts source the file instead of relying on a parent process
// having mutated its own environment.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileName is the name of the env file inside the target directory.
const FileName = "cms.env"

const header = "# Managed by cmsbridge. Do not edit by hand.\n"

// Write serialises vars to <dir>/cms.env and returns the written path.
// If dir is empty the call is a no-op (env export disabled). An empty vars
// map still rewrites the file so stale exports from an earlier run are
// cleared.
func Write(dir string, vars map[string]string) (string, error) {
	if dir == "" {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	content, err := Render(vars)
	if err != nil {
		return "", err
	}
	envPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", envPath, err)
	}
	return envPath, nil
}

// Render returns the file content for vars, header included.
func Render(vars map[string]string) (string, error) {
	if len(vars) == 0 {
		return header, nil
	}
	body, err := godotenv.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("marshal env: %w", err)
	}
	return header + body + "\n", nil
}
