package check

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/projlint/projlint"
)

// Result is the outcome for one fixture file.
type Result struct {
	Path string
	Stem string
	// Findings are GDAL-like transforms, or duplicate keys under the error policy.
	Findings projlint.Issues
	// Warnings are non-fatal issues such as duplicate keys under the warn policy.
	Warnings projlint.Issues
	// Err is set when the file could not be read, parsed or its transforms decoded.
	Err error
}

// Passed reports whether the file has neither findings nor an error.
func (r Result) Passed() bool { return r.Err == nil && len(r.Findings) == 0 }

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the number of results that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Passed reports whether every result passed. An empty report passes.
func (r Report) Passed() bool { return r.Failed() == 0 }

// Write renders the report in the given format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.WriteText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Trace(enc.Encode(r.document()))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(enc.Close())
	}
	return errors.NotValidf("format %q", format)
}

// WriteText writes one line per problem followed by a summary line.
func (r Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		for _, it := range res.Warnings {
			if _, err := fmt.Fprintf(w, "WARN %s: %s at %s: %s\n", res.Path, it.Code, it.Path, it.Message); err != nil {
				return errors.Trace(err)
			}
		}
		var err error
		switch {
		case res.Err != nil:
			_, err = fmt.Fprintf(w, "ERROR %s: %v\n", res.Path, res.Err)
		case len(res.Findings) > 0:
			for _, it := range res.Findings {
				if _, err = fmt.Fprintf(w, "FAIL %s: %s\n", res.Path, it.Message); err != nil {
					break
				}
			}
		}
		if err != nil {
			return errors.Trace(err)
		}
	}
	_, err := fmt.Fprintf(w, "%d checked, %d passed, %d failed\n", len(r.Results), len(r.Results)-r.Failed(), r.Failed())
	return errors.Trace(err)
}

type issueDoc struct {
	Path    string `json:"path" yaml:"path"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

type resultDoc struct {
	Path     string     `json:"path" yaml:"path"`
	Stem     string     `json:"stem" yaml:"stem"`
	Passed   bool       `json:"passed" yaml:"passed"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty"`
	Findings []issueDoc `json:"findings,omitempty" yaml:"findings,omitempty"`
	Warnings []issueDoc `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type reportDoc struct {
	Checked int         `json:"checked" yaml:"checked"`
	Failed  int         `json:"failed" yaml:"failed"`
	Results []resultDoc `json:"results" yaml:"results"`
}

func (r Report) document() reportDoc {
	doc := reportDoc{Checked: len(r.Results), Failed: r.Failed(), Results: []resultDoc{}}
	for _, res := range r.Results {
		rd := resultDoc{
			Path:     res.Path,
			Stem:     res.Stem,
			Passed:   res.Passed(),
			Findings: issueDocs(res.Findings),
			Warnings: issueDocs(res.Warnings),
		}
		if res.Err != nil {
			rd.Error = res.Err.Error()
		}
		doc.Results = append(doc.Results, rd)
	}
	return doc
}

func issueDocs(iss projlint.Issues) []issueDoc {
	var out []issueDoc
	for _, it := range iss {
		out = append(out, issueDoc{Path: it.Path, Code: it.Code, Message: it.Message})
	}
	return out
}
