package builtins

// TypeName is the local name of an XSD built-in simple type.
type TypeName string

// XSDNamespace is the namespace of the built-in types.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

const (
	TypeNameString           TypeName = "string"
	TypeNameNormalizedString TypeName = "normalizedString"
	TypeNameToken            TypeName = "token"
	TypeNameAnyURI           TypeName = "anyURI"
	TypeNameBoolean          TypeName = "boolean"
	TypeNameDecimal          TypeName = "decimal"
	TypeNameFloat            TypeName = "float"
	TypeNameDouble           TypeName = "double"

	TypeNameInteger            TypeName = "integer"
	TypeNameNonPositiveInteger TypeName = "nonPositiveInteger"
	TypeNameNegativeInteger    TypeName = "negativeInteger"
	TypeNameLong               TypeName = "long"
	TypeNameInt                TypeName = "int"
	TypeNameShort              TypeName = "short"
	TypeNameByte               TypeName = "byte"
	TypeNameNonNegativeInteger TypeName = "nonNegativeInteger"
	TypeNameUnsignedLong       TypeName = "unsignedLong"
	TypeNameUnsignedInt        TypeName = "unsignedInt"
	TypeNameUnsignedShort      TypeName = "unsignedShort"
	TypeNameUnsignedByte       TypeName = "unsignedByte"
	TypeNamePositiveInteger    TypeName = "positiveInteger"
)
