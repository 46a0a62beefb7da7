// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Compare view with saved-spectrum snapshots, YAML calibration config
// 0.2.0 - Star view: glowing halo, RGB channel bars, temperature presets
// 0.1.0 - Initial release: spectrum chart, headless summary/sweep/JSON modes
