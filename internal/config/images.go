package config

// ImageOptions mirrors the framework's image optimization settings.
type ImageOptions struct {
	// DeviceSizes are the srcset width buckets for full-width images (max 25).
	DeviceSizes []int `json:"deviceSizes" yaml:"deviceSizes"`

	// ImageSizes are the width buckets for fixed-size images (max 25).
	ImageSizes []int `json:"imageSizes" yaml:"imageSizes"`

	Domains []string `json:"domains" yaml:"domains"`

	// Path is the prefix of the image optimization route.
	Path string `json:"path" yaml:"path"`

	Loader     string `json:"loader" yaml:"loader"`
	LoaderFile string `json:"loaderFile" yaml:"loaderFile"`

	DisableStaticImages bool `json:"disableStaticImages" yaml:"disableStaticImages"`

	// MinimumCacheTTL is in seconds.
	MinimumCacheTTL int `json:"minimumCacheTTL" yaml:"minimumCacheTTL"`

	// Formats is the ordered list of accepted output MIME types.
	Formats []string `json:"formats" yaml:"formats"`

	DangerouslyAllowSVG    bool   `json:"dangerouslyAllowSVG" yaml:"dangerouslyAllowSVG"`
	ContentSecurityPolicy  string `json:"contentSecurityPolicy" yaml:"contentSecurityPolicy"`
	ContentDispositionType string `json:"contentDispositionType" yaml:"contentDispositionType"`

	RemotePatterns []RemotePattern `json:"remotePatterns" yaml:"remotePatterns"`

	Unoptimized bool `json:"unoptimized" yaml:"unoptimized"`
}

// RemotePattern allows optimizing images from an external origin.
type RemotePattern struct {
	Protocol string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
	Pathname string `json:"pathname,omitempty" yaml:"pathname,omitempty"`
}

const (
	imagePath                  = "/_next/image"
	imageLoader                = "default"
	imageCacheTTLSeconds       = 60
	imageFormatWebP            = "image/webp"
	imageContentSecurityPolicy = "default-src 'self'; script-src 'none'; sandbox;"
	imageDispositionInline     = "inline"
)

// DefaultImageOptions returns the fixed image settings. Every call allocates
// fresh slices so callers cannot alias each other's configuration.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		DeviceSizes:            []int{640, 750, 828, 1080, 1200, 1920, 2048, 3840},
		ImageSizes:             []int{16, 32, 48, 64, 96, 128, 256, 384},
		Domains:                []string{},
		Path:                   imagePath,
		Loader:                 imageLoader,
		LoaderFile:             "",
		DisableStaticImages:    false,
		MinimumCacheTTL:        imageCacheTTLSeconds,
		Formats:                []string{imageFormatWebP},
		DangerouslyAllowSVG:    false,
		ContentSecurityPolicy:  imageContentSecurityPolicy,
		ContentDispositionType: imageDispositionInline,
		RemotePatterns:         []RemotePattern{},
		Unoptimized:            false,
	}
}
