// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"
)

// runQuery runs a jq program over the records and prints each result as JSON.
func (p *Printer) runQuery(data any) error {
	parsed, err := gojq.Parse(p.opts.Query)
	if err != nil {
		return fmt.Errorf("invalid --jq query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return fmt.Errorf("invalid --jq query: %w", err)
	}
	normalized, err := normalize(data)
	if err != nil {
		return err
	}

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := p.printJSON(v); err != nil {
			return err
		}
	}

	return nil
}

// runJSONPath evaluates a JSON path over the records and prints the result.
func (p *Printer) runJSONPath(data any) error {
	path := strings.TrimSpace(p.opts.JSONPath)
	if !strings.HasPrefix(path, "$") {
		path = "$" + strings.TrimPrefix(path, ".")
		if !strings.HasPrefix(path, "$[") {
			path = strings.Replace(path, "$", "$.", 1)
		}
	}
	normalized, err := normalize(data)
	if err != nil {
		return err
	}
	v, err := jsonpath.Get(path, normalized)
	if err != nil {
		return fmt.Errorf("invalid --jsonpath %q: %w", p.opts.JSONPath, err)
	}

	return p.printJSON(v)
}

// normalize round-trips data through JSON so queries see plain maps and slices.
func normalize(data any) (any, error) {
	buf, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}
	var out any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return out, nil
}
