// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Record is one row of the tabular policy source: a kind token, a single
// source router, a brace-delimited destination list in the canonical
// encoding, and a raw specifics string.
type Record struct {
	Type         string
	Source       string
	Destinations string
	Specifics    string
}

// FromRecord builds a policy from a record. A destination element that fails
// to parse fails the whole record; no partial policies are produced. An
// unsupported policy kind is an error at this boundary, since the caller
// asked for a policy and would otherwise get none.
func FromRecord(rec Record) (Policy, error) {
	kind, ok := ParseKindToken(rec.Type)
	if !ok {
		return nil, fmt.Errorf("unknown policy type %q", rec.Type)
	}

	sources := []PolicySource{NewPolicySource(rec.Source)}

	destinations, err := ParseDestinationList(rec.Destinations)
	if err != nil {
		return nil, err
	}

	p := Make(kind, sources, destinations, ParseSpecifics(rec.Specifics))
	if p == nil {
		return nil, fmt.Errorf("unsupported policy type %s", kind)
	}
	return p, nil
}

// ParseDestinationList parses a brace-delimited, comma-space separated list
// of canonical destination strings, e.g.
// "{r1:eth0 (10.0.0.0/24), r2:eth1 (10.0.1.0/24)}".
func ParseDestinationList(s string) ([]PolicyDestination, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return nil, fmt.Errorf("destination list %q is not brace-delimited", s)
	}
	inner := trimmed[1 : len(trimmed)-1]
	if inner == "" {
		return nil, fmt.Errorf("destination list %q is empty", s)
	}

	parts := strings.Split(inner, ", ")
	destinations := make([]PolicyDestination, 0, len(parts))
	for _, part := range parts {
		d, ok := ParseDestination(part)
		if !ok {
			return nil, fmt.Errorf("malformed destination %q", part)
		}
		destinations = append(destinations, d)
	}
	return destinations, nil
}

// RenderDestinationList is the inverse of ParseDestinationList.
func RenderDestinationList(destinations []PolicyDestination) string {
	parts := make([]string, len(destinations))
	for i, d := range destinations {
		parts[i] = d.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// recordColumns are the required CSV header columns, named as the tabular
// sources name them.
var recordColumns = []string{"type", "source", "Destinations", "specifics"}

// ReadRecords reads CSV rows into records. The first row must be a header
// containing at least the type, source, Destinations and specifics columns;
// extra columns are ignored. Destination lists contain commas, so that field
// must be quoted in the file.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range recordColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, Record{
			Type:         row[idx["type"]],
			Source:       row[idx["source"]],
			Destinations: row[idx["Destinations"]],
			Specifics:    row[idx["specifics"]],
		})
	}
	return records, nil
}
