package projlint

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// String returns the lower-case name used in configuration files.
func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// ParseSeverity is the inverse of Severity.String.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "", "ignore":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// Options bundles document validation options.
type Options struct {
	Strictness Strictness
	// MaxIssues limits duplicate-key reports per document (<0 unlimited, 0 uses the default).
	MaxIssues int
}

const defaultMaxIssues = 20
