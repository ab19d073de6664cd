package model

// Outcome reports the effect of an owner-scoped write.
type Outcome int

const (
	// OutcomeNotFoundOrUnauthorized means no row matched the (id, owner)
	// pair: the record does not exist or belongs to someone else.
	OutcomeNotFoundOrUnauthorized Outcome = iota
	// OutcomeApplied means the write matched exactly one row.
	OutcomeApplied
)

// Applied reports whether the write took effect.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNotFoundOrUnauthorized:
		return "not_found_or_unauthorized"
	default:
		return "unknown"
	}
}

// OutcomeFromRows maps an affected-row count to an Outcome.
func OutcomeFromRows(n int64) Outcome {
	if n > 0 {
		return OutcomeApplied
	}
	return OutcomeNotFoundOrUnauthorized
}
