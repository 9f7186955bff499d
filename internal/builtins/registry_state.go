package builtins

type registry struct {
	byName  map[TypeName]*Builtin
	ordered []*Builtin
}

var defaultRegistry = newRegistry(builtinTypes())
