// Package config handles configuration loading and resolution for lastrun.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --format, --base-url, --no-color, --ci, --debug)
//  2. Environment variables (LASTRUN_THEME, LASTRUN_FORMAT, LASTRUN_BASE_URL,
//     LASTRUN_NO_COLOR or NO_COLOR, LASTRUN_CI or CI, LASTRUN_DEBUG)
//  3. YAML config file (.lastrun.yaml in the working directory or
//     ~/.config/lastrun/.lastrun.yaml)
//  4. Hardcoded defaults
//
// # Themes
//
// The built-in themes are default, orca and mono. The themes map in the YAML
// file defines new themes or overrides built-in ones:
//
//	themes:
//	  night:
//	    base: orca
//	    colors:
//	      failure: "#ff5f87"
//	    icons:
//	      success: "+"
//
// # CI Mode
//
// CI mode (--ci, CI=true or ci: true) implies no-color: the mono theme is
// used, hyperlinks are not emitted and output is safe for log files.
package config
