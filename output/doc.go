// Package output encodes generated manifests and delivers them. Encode
// writes the plain CACHE MANIFEST text or a JSON/YAML document, Destination
// stamps {hash}, {count} and {dir} placeholders into an output path,
// WriteFile replaces the target atomically and Check reports, as a unified
// diff, whether a manifest on disk is stale.
package output
