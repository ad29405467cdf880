package args

//go:generate go tool stringer -type=KindEnum -trimprefix=Kind -output=kind_string.go

// KindEnum names the logical argument kind a Descriptor was built for.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNumber
	KindBoolean
	KindString
	KindFunction
	KindNativeHandle
	KindIgnore
	KindCustom
	KindInteger
	KindObject
	KindArray

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
