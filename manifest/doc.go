// Package manifest generates HTML5 application cache manifests. It walks a
// directory tree, keeps regular non-hidden files, folds their contents into
// one MD5 digest and renders the CACHE MANIFEST line sequence. Validate,
// ListPaths, Includes, NormalizePath and Digest are the individual pipeline
// steps; a Generator binds them together and lets callers substitute any of
// them through WithSteps.
package manifest
