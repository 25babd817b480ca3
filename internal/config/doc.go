// Package config loads mep's settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. A config file: mep.toml or mep.yaml in the working directory, or the
//     file named explicitly with --config
//  3. Environment variables with the MEP_ prefix (MEP_DISPLAY_DEVICE sets
//     display.device)
//
// Keys:
//
//	plugins.dir        directory searched for modules (default ".")
//	plugins.patterns   extra shared-object globs, comma separated in env
//	plugins.scripts    also load mep*.lua script modules
//	display.device     "ansi" or "tcell"
//	display.width      fallback width when the terminal size is unknown
//	display.height     fallback height when the terminal size is unknown
//	display.clear      initial pixel color, hex (#RGB, #RRGGBB, #RRGGBBAA)
//	log.verbosity      0 warn, 1 info, 2 debug, 3 trace
package config
