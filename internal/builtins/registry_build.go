package builtins

import (
	"math"

	"github.com/jacoelho/xsdgen/internal/whitespace"
)

func newRegistry(items []*Builtin) registry {
	byName := make(map[TypeName]*Builtin, len(items))
	ordered := make([]*Builtin, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		if _, exists := byName[item.Name]; exists {
			continue
		}
		byName[item.Name] = item
		ordered = append(ordered, item)
	}

	return registry{
		byName:  byName,
		ordered: ordered,
	}
}

func builtinTypes() []*Builtin {
	return []*Builtin{
		{Name: TypeNameString, WhiteSpace: whitespace.Preserve, build: buildText},
		{Name: TypeNameNormalizedString, WhiteSpace: whitespace.Replace, build: buildText},
		{Name: TypeNameToken, WhiteSpace: whitespace.Collapse, build: buildText},
		{Name: TypeNameAnyURI, WhiteSpace: whitespace.Collapse, build: buildAnyURI},
		{Name: TypeNameBoolean, WhiteSpace: whitespace.Collapse, build: buildBoolean},
		{Name: TypeNameDecimal, WhiteSpace: whitespace.Collapse, build: buildDecimal},
		{Name: TypeNameFloat, WhiteSpace: whitespace.Collapse, build: buildFloat},
		{Name: TypeNameDouble, WhiteSpace: whitespace.Collapse, build: buildFloat},
		integerType(TypeNameInteger, math.MinInt64, math.MaxInt64),
		integerType(TypeNameNonPositiveInteger, math.MinInt64, 0),
		integerType(TypeNameNegativeInteger, math.MinInt64, -1),
		integerType(TypeNameLong, math.MinInt64, math.MaxInt64),
		integerType(TypeNameInt, math.MinInt32, math.MaxInt32),
		integerType(TypeNameShort, math.MinInt16, math.MaxInt16),
		integerType(TypeNameByte, math.MinInt8, math.MaxInt8),
		integerType(TypeNameNonNegativeInteger, 0, math.MaxInt64),
		// value spaces above MaxInt64 are truncated
		integerType(TypeNameUnsignedLong, 0, math.MaxInt64),
		integerType(TypeNameUnsignedInt, 0, math.MaxUint32),
		integerType(TypeNameUnsignedShort, 0, math.MaxUint16),
		integerType(TypeNameUnsignedByte, 0, math.MaxUint8),
		integerType(TypeNamePositiveInteger, 1, math.MaxInt64),
	}
}

func integerType(name TypeName, lo, hi int64) *Builtin {
	return &Builtin{Name: name, WhiteSpace: whitespace.Collapse, build: integerBuilder(string(name), lo, hi)}
}
