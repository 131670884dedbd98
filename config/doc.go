// Package config holds the extraction parameters.
//
// Parameters is a plain value: it is built once (defaults, a key/value text
// file, or a YAML file), validated, and then passed to every component at
// construction. No component keeps global parameter state.
//
// Keys follow the names used in parameter and snake files, for example
// "grad-diff", "minimum-size" or "grouping-distance-threshold". WriteTo emits
// every key in a fixed order so a written file reads back to the same value.
package config
