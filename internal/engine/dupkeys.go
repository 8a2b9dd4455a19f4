package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	path         string
	keys         map[string]struct{}
	expectingKey bool
	pendingKey   string
	nextIndex    int
}

// DetectDuplicateKeysBytes detects duplicate object keys in a JSON byte slice.
// If onDup is DupIgnore, no issues are produced. maxIssues < 0 means unlimited;
// 0 means disabled; >0 sets a limit after which a truncated issue is appended.
// Under DupError detection stops at the first duplicate.
func DetectDuplicateKeysBytes(data []byte, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	return DetectDuplicateKeysReader(bytes.NewReader(data), onDup, maxIssues)
}

// DetectDuplicateKeysReader detects duplicate object keys from an io.Reader.
// The reader is consumed fully unless detection stops early.
func DetectDuplicateKeysReader(r io.Reader, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore || maxIssues == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		issues []SimpleIssue
		stack  []frame
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return issues, io.ErrUnexpectedEOF
			}
			return issues, nil
		}
		if err != nil {
			return issues, err
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
			valueDone(stack)
			continue
		}

		if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
			top := &stack[n-1]
			key, _ := tok.(string)
			if _, dup := top.keys[key]; dup {
				issues = append(issues, SimpleIssue{
					Code:    "duplicate_key",
					Path:    JoinPointer(top.path, key),
					Message: "key '" + key + "' duplicated",
				})
				if onDup == DupError {
					return issues, nil
				}
				if maxIssues > 0 && len(issues) >= maxIssues {
					issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
					return issues, nil
				}
			}
			top.keys[key] = struct{}{}
			top.expectingKey = false
			top.pendingKey = key
			continue
		}

		path := valuePath(stack)
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{':
				stack = append(stack, frame{kind: kindObject, path: path, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, frame{kind: kindArray, path: path})
			}
			continue
		}
		valueDone(stack)
	}
}

// valuePath returns the pointer of the value about to be read and advances
// the array index of the enclosing frame.
func valuePath(stack []frame) string {
	n := len(stack)
	if n == 0 {
		return ""
	}
	top := &stack[n-1]
	if top.kind == kindArray {
		p := JoinPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return JoinPointer(top.path, top.pendingKey)
}

func valueDone(stack []frame) {
	if n := len(stack); n > 0 {
		top := &stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends an RFC 6901 escaped reference token to base.
func JoinPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
