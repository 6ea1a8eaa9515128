package config

// ConfigFileName is the optional per-project checker configuration file.
const ConfigFileName = "tova.yaml"

// Built-in type names
const (
	IntTypeName   = "Int"
	BoolTypeName  = "Bool"
	CharTypeName  = "Char"
	RangeTypeName = "Range"
)

// Missing-case markers used by exhaustiveness warnings
const (
	WildcardCase      = "_"
	OtherIntegersCase = "<other integers>"
)
