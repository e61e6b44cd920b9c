package config

// ModuleKind classifies what a module produces.
type ModuleKind string

const (
	KindBinary         ModuleKind = "binary"
	KindStaticLibrary  ModuleKind = "static-library"
	KindDynamicLibrary ModuleKind = "dynamic-library"
	KindHeaderOnly     ModuleKind = "header-only"
)

// ParseModuleKind maps a raw kind string to its ModuleKind, reporting
// whether the value is one of the known kinds.
func ParseModuleKind(s string) (ModuleKind, bool) {
	switch ModuleKind(s) {
	case KindBinary, KindStaticLibrary, KindDynamicLibrary, KindHeaderOnly:
		return ModuleKind(s), true
	}
	return "", false
}

// LinkType describes how an external package is consumed by its requester.
type LinkType string

const (
	LinkStatic     LinkType = "static"
	LinkDynamic    LinkType = "dynamic"
	LinkHeaderOnly LinkType = "header-only"
)

// ParseLinkType maps a raw link string to its LinkType, reporting whether
// the value is one of the known link types.
func ParseLinkType(s string) (LinkType, bool) {
	switch LinkType(s) {
	case LinkStatic, LinkDynamic, LinkHeaderOnly:
		return LinkType(s), true
	}
	return "", false
}

// PackageRequirement is a single external dependency request made by a
// module. Identity is the package name; two requirements for the same name
// conflict when their versions differ (both concrete) or their link types
// differ. Before bundle expansion a requirement's name may refer to a
// registered bundle, and empty Version/Link mean "unspecified" so that
// bundle overrides can be told apart from explicit values. Expansion
// normalizes every requirement: Version becomes the Latest sentinel when
// unspecified and Link defaults to static.
type PackageRequirement struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Link        LinkType `json:"link"`
	RequestedBy string   `json:"requestedBy"`
}

// BundleMember is one entry of a bundle definition: a package name plus the
// bundle's default version and link type for it. Empty fields mean the
// bundle leaves the choice to the caller (or ultimately the installer).
type BundleMember struct {
	Name    string
	Version string
	Link    LinkType
}

// Bundle is a named, reusable group of external package requirements.
// Bundles live in a process-wide registry that is read-only after load.
type Bundle struct {
	Name    string
	Members []BundleMember
}

// Module is one buildable unit of the project.
type Module struct {
	Name string
	Kind ModuleKind
	// Requires lists internal dependencies by module name.
	Requires []string
	// Externals lists external dependency requests in declaration order.
	// Entries may still be bundle references until expansion runs.
	Externals []PackageRequirement
}

// Project carries the project-wide settings the downstream generator and
// installer need. It does not influence graph resolution.
type Project struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Standard string `json:"standard"`
	Compiler string `json:"compiler"`
	// Triplet is the vcpkg-style platform/architecture/linkage identifier
	// governing where external packages are installed.
	Triplet string `json:"triplet"`
}

// Model is the complete loaded build description. Modules preserve
// declaration order.
type Model struct {
	Project Project
	Modules []*Module
	Bundles []*Bundle
}

// ModuleByName returns the module with the given name, if present.
func (m *Model) ModuleByName(name string) (*Module, bool) {
	for _, mod := range m.Modules {
		if mod.Name == name {
			return mod, true
		}
	}
	return nil, false
}
