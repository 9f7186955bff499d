package builtins

import "strings"

// Get returns the built-in type by local type name.
func Get(name TypeName) *Builtin {
	return defaultRegistry.byName[name]
}

// MustGet returns the built-in type and panics when unknown.
func MustGet(name TypeName) *Builtin {
	item := Get(name)
	if item != nil {
		return item
	}
	panic("builtins: unknown type " + string(name))
}

// GetNS returns the built-in type for an expanded name.
func GetNS(namespace, local string) *Builtin {
	if namespace != XSDNamespace {
		return nil
	}
	return Get(TypeName(local))
}

// Lookup resolves a type reference written as a local name, a conventional
// xs: or xsd: prefixed name, or an expanded {namespace}local name.
func Lookup(ref string) *Builtin {
	if rest, ok := strings.CutPrefix(ref, "{"); ok {
		namespace, local, found := strings.Cut(rest, "}")
		if !found {
			return nil
		}
		return GetNS(namespace, local)
	}
	if prefix, local, found := strings.Cut(ref, ":"); found {
		if prefix != "xs" && prefix != "xsd" {
			return nil
		}
		return Get(TypeName(local))
	}
	return Get(TypeName(ref))
}

// List returns built-in types in deterministic order.
func List() []*Builtin {
	if len(defaultRegistry.ordered) == 0 {
		return nil
	}
	items := make([]*Builtin, len(defaultRegistry.ordered))
	copy(items, defaultRegistry.ordered)
	return items
}
