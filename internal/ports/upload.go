package ports

// UploadPolicy is the read-only configuration that governs image uploads.
// Implemented by platform/config on top of the loaded key/value tree.
type UploadPolicy interface {
	// AllowedImageExtensions returns the permitted file extensions,
	// e.g. ".jpg". Returns an error wrapping domain.ErrMisconfigured when
	// the key is not configured.
	AllowedImageExtensions() ([]string, error)

	// MaxFileSizeMegabytes returns the per-file size limit in megabytes.
	// Returns an error wrapping domain.ErrMisconfigured when the key is not
	// configured or is not an integer.
	MaxFileSizeMegabytes() (int, error)
}
