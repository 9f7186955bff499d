package xsdgen

import "github.com/jacoelho/xsdgen/internal/builtins"

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(def int) int {
	if !o.set {
		return def
	}
	return o.value
}

// Options configures the limits used where facets leave the value space open.
type Options struct {
	minLength    intOption
	maxLength    intOption
	decimalScale intOption
	maxDiscards  intOption
}

type resolvedOptions struct {
	limits      builtins.Limits
	maxDiscards int
}
