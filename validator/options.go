package validator

// Option configures a Validator returned by New.
type Option func(*Validator)

// WithIncludeWarnings enables or disables warning-level findings.
// Default: true.
func WithIncludeWarnings(enabled bool) Option {
	return func(v *Validator) { v.IncludeWarnings = enabled }
}

// WithStrictMode enables stricter validation beyond the base TR-181
// conventions (reserved for future rules; currently only gates whether
// an unknown data_type is reported as an error instead of a warning).
// Default: false.
func WithStrictMode(enabled bool) Option {
	return func(v *Validator) { v.StrictMode = enabled }
}

// WithStandardNamespaces overrides the list of path prefixes considered
// part of the standard TR-181 namespace, used by the custom-node rules.
// Default: [DefaultStandardNamespaces].
func WithStandardNamespaces(namespaces []string) Option {
	return func(v *Validator) {
		v.StandardNamespaces = append([]string(nil), namespaces...)
	}
}
