// Package pathutil provides small path-related helpers shared by the
// TR-181 extractors and validators: matching template instance
// placeholders and sanitizing output file paths.
//
// # Template Placeholders
//
// TR-181 parameter templates use "{i}" in place of a concrete instance
// number, e.g. "Device.WiFi.Radio.{i}.Channel". [PlaceholderRegex] matches
// these placeholders so a template path can be checked against, or expanded
// from, a concrete one.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It cleans the path first, so ".." elements are resolved rather than
// rejected; a cleaned path that still contains ".." is rejected, as is a
// path that is a symlink:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // path traversal or symlink detected
//	}
package pathutil
