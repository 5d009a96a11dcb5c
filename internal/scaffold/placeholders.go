package scaffold

import (
	"github.com/opmodel/modgen/internal/templates"
)

// Placeholder keys shared with the repository stubs.
const (
	KeyClassNamespace     = "CLASS_NAMESPACE"
	KeyClass              = "CLASS"
	KeyInterfaceNamespace = "REPOSITORY_INTERFACE_NAMESPACE"
	KeyInterface          = "REPOSITORY_INTERFACE"
	KeyInterfaceUse       = "REPOSITORY_INTERFACE_USE"
	KeyInterfaceImpl      = "REPOSITORY_INTERFACE_IMPLEMENTS"
)

// InterfaceBinding says whether the generated class implements an interface.
// The variants are WithInterface and WithoutInterface.
type InterfaceBinding interface {
	fragments() interfaceFragments
}

// interfaceFragments are the four interface-related placeholder values.
type interfaceFragments struct {
	namespace  string
	name       string
	use        string
	implements string
}

// WithInterface binds the class to an existing interface.
type WithInterface struct {
	// Namespace is the interface's fully-qualified name.
	Namespace string

	// Name is the interface's short name.
	Name string
}

func (w WithInterface) fragments() interfaceFragments {
	return interfaceFragments{
		namespace:  w.Namespace,
		name:       w.Name,
		use:        "\nuse " + w.Namespace + ";",
		implements: " implements " + w.Name,
	}
}

// WithoutInterface generates a class that implements nothing.
type WithoutInterface struct{}

func (WithoutInterface) fragments() interfaceFragments {
	return interfaceFragments{}
}

// BuildPlaceholders assembles the stub placeholders. A nil binding is
// treated as WithoutInterface.
func BuildPlaceholders(names Names, classNamespace string, binding InterfaceBinding) templates.Placeholders {
	if binding == nil {
		binding = WithoutInterface{}
	}
	f := binding.fragments()

	return templates.Placeholders{
		KeyClassNamespace:     classNamespace,
		KeyClass:              names.Class,
		KeyInterfaceNamespace: f.namespace,
		KeyInterface:          f.name,
		KeyInterfaceUse:       f.use,
		KeyInterfaceImpl:      f.implements,
	}
}
