package cqltour

// Kind categorizes a column's values for rendering purposes.
//
// The renderer only needs to distinguish numeric columns,
// which are right-aligned, from everything else, which is
// left-aligned. The kind is declared per column by whoever
// constructs the view (usually a driver adapter that knows
// the column's wire type) and is never inferred from the
// textual form of a value, so that numeric-looking strings
// like zero-padded IDs stay left-aligned.
type Kind int

const (
	// KindOther covers all non-numeric column types.
	KindOther Kind = iota

	// KindNumeric covers integer, floating point,
	// and arbitrary-precision decimal column types.
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindNumeric:
		return "numeric"
	default:
		return "invalid"
	}
}
