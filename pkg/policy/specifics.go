// SPDX-License-Identifier: GPL-2.0 OR BSD-3-Clause
package policy

import "strconv"

// Specifics is the kind-specific parameter of a policy: either a numeric
// count (path counts for load balancing) or an opaque label (waypoint
// descriptions). The union is resolved once at the ingestion boundary so
// variant constructors receive a concrete value.
type Specifics struct {
	num     int
	label   string
	numeric bool
}

// NumericSpecifics wraps a count.
func NumericSpecifics(n int) Specifics {
	return Specifics{num: n, numeric: true}
}

// LabelSpecifics wraps an opaque label.
func LabelSpecifics(s string) Specifics {
	return Specifics{label: s}
}

// ParseSpecifics resolves a raw specifics string: all-digit input becomes a
// numeric count, anything else stays an opaque label.
func ParseSpecifics(s string) Specifics {
	if n, err := strconv.Atoi(s); err == nil && s != "" && s[0] != '-' && s[0] != '+' {
		return NumericSpecifics(n)
	}
	return LabelSpecifics(s)
}

// Numeric reports whether the value is a count.
func (s Specifics) Numeric() bool {
	return s.numeric
}

// Num returns the count, or 0 for labels.
func (s Specifics) Num() int {
	return s.num
}

// Label returns the label, or "" for counts.
func (s Specifics) Label() string {
	return s.label
}

// String renders counts in decimal and labels verbatim.
func (s Specifics) String() string {
	if s.numeric {
		return strconv.Itoa(s.num)
	}
	return s.label
}
