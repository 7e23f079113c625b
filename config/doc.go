// Package config loads the scorex policy and rendering settings from a
// TOML or YAML file.
//
// Keys:
//
//	verovio              path of the verovio executable
//	scale                engraving scale in percent
//	page_width           page width in verovio units
//	png_width            width of PNG previews in pixels
//	strip_dynamics       part condition selecting parts whose dynamics are removed
//	default_style_rules  whether the built in style rules apply (default true)
//	style_rules          additional rules with name, contains, ignore_case,
//	                     set and set_unless_reset
package config
