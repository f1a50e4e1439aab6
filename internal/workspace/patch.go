package workspace

import (
	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/envmap"
)

// TypeSet is a set of run configuration types.
type TypeSet map[string]struct{}

// NewTypeSet returns a set holding types.
func NewTypeSet(types ...string) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}

// DefaultSkipTypes is the set of types that are never patched.
func DefaultSkipTypes() TypeSet {
	return NewTypeSet(constants.GoApplicationRunConfiguration)
}

// Result describes what Patch did.
type Result struct {
	Patched []Node   // configuration elements that were rewritten
	Skipped []string // type of each configuration left alone
}

// Patch replaces the <envs> of every <configuration> in tree with one
// <env name=".." value=".."/> per entry of env, in mapping order.
// A configuration is left alone only when it has a type attribute that is in skip.
// Patching the same tree twice gives the same document.
func Patch(tree Tree, env *envmap.Map, skip TypeSet) Result {
	var res Result
	for _, conf := range tree.FindAll("configuration") {
		if typ, ok := conf.Attr("type"); ok && skip.Has(typ) {
			res.Skipped = append(res.Skipped, typ)
			continue
		}

		envs, ok := conf.Child("envs")
		if ok {
			envs.ClearChildren()
		} else {
			envs = tree.CreateElement("envs")
			conf.AppendChild(envs)
		}

		for name, value := range env.All() {
			e := tree.CreateElement("env")
			e.SetAttr("name", name)
			e.SetAttr("value", value)
			envs.AppendChild(e)
		}
		res.Patched = append(res.Patched, conf)
	}
	return res
}
