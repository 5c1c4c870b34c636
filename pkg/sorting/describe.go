package sorting

import (
	"github.com/xlab/treeprint"
)

func (reg *Registry) Print(tree treeprint.Tree) {
	types := tree.AddBranch("compareFunctionFactories")
	for _, name := range reg.DataTypes() {
		if name == DefaultDataType {
			types.AddMetaNode("fallback", name)
			continue
		}
		types.AddNode(name)
	}
	_, hasNormalizer := reg.SortConfigNormalizer()
	tree.AddMetaNode(hookState(hasNormalizer), "sortConfigNormalizer")
	_, hasMain := reg.MainSortComparator()
	tree.AddMetaNode(hookState(hasMain), "mainSortComparator")
}

// Describe renders the registered data types and hook state.
func (reg *Registry) Describe() string {
	tree := treeprint.NewWithRoot("Registry:")
	reg.Print(tree)
	return tree.String()
}

func hookState(set bool) string {
	if set {
		return "set"
	}
	return "unset"
}
