// Package resources defines the catalog of external documentation sites
// that the palette can search.
//
// The catalog is an ordered, read-only list of Resource descriptors. Every
// resource has a shortcut prefix ("!b") recognized at the end of palette
// input and an activation key ("b") used by the two-step chord. The letter
// of the prefix and the activation key are always the same.
//
// Adding or removing a resource only requires editing the default list (or
// supplying a YAML catalog file); no other package needs to change.
package resources
