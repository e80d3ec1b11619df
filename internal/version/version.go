// Package version provides build and version information.
package version

import "fmt"

// Version is the current application version.
const Version = "0.3.0"

// Name is the binary name shown in headers and --version output.
const Name = "ls-galaxy"

// Milestones:
// 0.3.0 - Density-wave overlay, presets, X-ray blending, headless plots
// 0.2.0 - Infinite grid, pinch/rotate gestures, zoom quantization
// 0.1.0 - Initial release: CDF sampler, particle generator, terminal canvas

// String returns "name version".
func String() string {
	return fmt.Sprintf("%s %s", Name, Version)
}
