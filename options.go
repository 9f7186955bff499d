package xsdgen

import (
	"fmt"

	"github.com/jacoelho/xsdgen/internal/builtins"
)

const defaultMaxDiscards = 10

func resolveOptions(opts []Options) (resolvedOptions, error) {
	switch len(opts) {
	case 0:
		return NewOptions().withDefaults()
	case 1:
		return opts[0].withDefaults()
	default:
		return resolvedOptions{}, fmt.Errorf("expected at most one Options value, got %d", len(opts))
	}
}

func (o Options) withDefaults() (resolvedOptions, error) {
	def := builtins.DefaultLimits()
	limits := builtins.Limits{
		MinLength:    o.minLength.resolved(def.MinLength),
		MaxLength:    o.maxLength.resolved(def.MaxLength),
		DecimalScale: o.decimalScale.resolved(def.DecimalScale),
	}
	if limits.MinLength < 0 {
		return resolvedOptions{}, fmt.Errorf("min length must be >= 0, got %d", limits.MinLength)
	}
	if limits.MaxLength < limits.MinLength {
		return resolvedOptions{}, fmt.Errorf("max length %d is below min length %d", limits.MaxLength, limits.MinLength)
	}
	if limits.DecimalScale < 0 || limits.DecimalScale > builtins.MaxDecimalScale {
		return resolvedOptions{}, fmt.Errorf("decimal scale must be in [0, %d], got %d", builtins.MaxDecimalScale, limits.DecimalScale)
	}
	maxDiscards := o.maxDiscards.resolved(defaultMaxDiscards)
	if maxDiscards < 1 {
		return resolvedOptions{}, fmt.Errorf("max discards must be >= 1, got %d", maxDiscards)
	}
	return resolvedOptions{limits: limits, maxDiscards: maxDiscards}, nil
}
