package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v2"

	"github.com/hartyporpoise/cmsbridge/internal/config"
)

func resolved(t *testing.T) *config.NextConfig {
	t.Helper()
	cfg, err := config.Resolve(config.Env{CMSEndpoint: "example.com", UploadPath: "/site"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return cfg
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"toml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeJSONSnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, resolved(t), JSON, true); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	snaps.MatchSnapshot(t, strings.TrimRight(buf.String(), "\n"))
}

func TestEncodeJSONCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, resolved(t), JSON, false); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON spans several lines:\n%s", out)
	}
	if strings.Contains(out, "Exports") || strings.Contains(out, "WPGRAPHQL_URL") {
		t.Errorf("exports leaked into output: %s", out)
	}

	var got config.NextConfig
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := *resolved(t)
	want.Exports = nil
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONOmitsEmptyBasePath(t *testing.T) {
	cfg, err := config.Resolve(config.Env{GraphQLURL: "https://foo.bar/wp/graphql"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, JSON, false); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(buf.String(), "basePath") {
		t.Errorf("basePath present without PANTHEON_UPLOAD_PATH: %s", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, resolved(t), YAML, false); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"basePath: /site",
		"backendUrl: https://example.com/wp/graphql",
		"output: standalone",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}

	var got config.NextConfig
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := *resolved(t)
	want.Exports = nil
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, resolved(t), Format("toml"), false); err == nil {
		t.Fatal("Encode with unknown format succeeded")
	}
}
