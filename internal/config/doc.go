// Package config defines the inpainting server settings and their JSON file.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from a JSON file layered over the defaults
//   - Saving settings as indented JSON
//   - Range and enumeration validation
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Serves on 127.0.0.1:8080 with the lama model on cuda
//	// Models are downloaded to $XDG_CACHE_HOME or ~/.cache
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Malformed or invalid file; a missing file is not an error
//	}
//
// # Saving Settings
//
//	err := settings.Normalized().Save("/path/to/config.json")
//
// # Wire Format
//
// The JSON keys (host, port, model, device, quality, enable_realesrgan, ...)
// are read by the inpainting server and must not be renamed. Unset input and
// output paths are written as null.
package config
