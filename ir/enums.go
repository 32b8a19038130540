package ir

// Visibility is a declaration's ELF-style symbol visibility.
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityHidden
	VisibilityInternal
	VisibilityProtected
	VisibilityNone
)

// ParseVisibility maps an abi-instr "visibility" attribute value to a
// Visibility; an unrecognized value falls back to VisibilityDefault, per
// the attribute semantics table.
func ParseVisibility(s string) Visibility {
	switch s {
	case "hidden":
		return VisibilityHidden
	case "internal":
		return VisibilityInternal
	case "protected":
		return VisibilityProtected
	case "none":
		return VisibilityNone
	default:
		return VisibilityDefault
	}
}

func (v Visibility) String() string {
	switch v {
	case VisibilityHidden:
		return "hidden"
	case VisibilityInternal:
		return "internal"
	case VisibilityProtected:
		return "protected"
	case VisibilityNone:
		return "none"
	default:
		return "default"
	}
}

// Binding is a declaration's linkage binding.
type Binding int

const (
	BindingGlobal Binding = iota
	BindingLocal
	BindingWeak
	BindingNone
)

// ParseBinding maps an abi-instr "binding" attribute value to a Binding;
// an unrecognized value falls back to BindingGlobal.
func ParseBinding(s string) Binding {
	switch s {
	case "local":
		return BindingLocal
	case "weak":
		return BindingWeak
	case "none":
		return BindingNone
	default:
		return BindingGlobal
	}
}

func (b Binding) String() string {
	switch b {
	case BindingLocal:
		return "local"
	case BindingWeak:
		return "weak"
	case BindingNone:
		return "none"
	default:
		return "global"
	}
}

// Access is a class member's access specifier.
type Access int

const (
	AccessPrivate Access = iota
	AccessProtected
	AccessPublic
)

// ParseAccess maps an abi-instr "access" attribute value to an Access;
// an unrecognized value falls back to AccessPrivate.
func ParseAccess(s string) Access {
	switch s {
	case "protected":
		return AccessProtected
	case "public":
		return AccessPublic
	default:
		return AccessPrivate
	}
}

func (a Access) String() string {
	switch a {
	case AccessProtected:
		return "protected"
	case AccessPublic:
		return "public"
	default:
		return "private"
	}
}

// CVQualifier is a bitmask of the const/volatile qualifiers a
// QualifiedTypeDef adds to its underlying type.
type CVQualifier uint8

const (
	CVConst CVQualifier = 1 << iota
	CVVolatile
)

func (q CVQualifier) Const() bool    { return q&CVConst != 0 }
func (q CVQualifier) Volatile() bool { return q&CVVolatile != 0 }
