package projlint

import (
	"strings"

	eng "github.com/projlint/projlint/internal/engine"
)

// DetectDuplicateKeys reports repeated object keys in a JSON document
// according to opt.Strictness. A repeated `proj:transform` is singled out:
// only the last value is checked, so earlier ones would pass unseen.
// Under Ignore nothing is scanned.
func DetectDuplicateKeys(data []byte, opt Options) (Issues, error) {
	maxIssues := opt.MaxIssues
	if maxIssues == 0 {
		maxIssues = defaultMaxIssues
	}
	si, err := eng.DetectDuplicateKeysBytes(data, toEngineDup(opt.Strictness.OnDuplicateKey), maxIssues)
	if err != nil {
		return nil, err
	}
	var iss Issues
	for _, s := range si {
		it := Issue{Code: s.Code, Path: s.Path, Message: s.Message}
		if s.Code == CodeDuplicateKey && strings.HasSuffix(s.Path, "/"+TransformKey) {
			it.Message = TransformKey + " repeated at " + s.Path + "; only the last value is checked"
			it.Params = map[string]any{"key": TransformKey}
		}
		iss = AppendIssues(iss, it)
	}
	return iss, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
