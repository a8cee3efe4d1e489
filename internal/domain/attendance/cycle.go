package attendance

// CycleMode selects the classification algorithm for the next check-in.
type CycleMode string

const (
	// CycleStrict allows exactly one entry and one exit per day.
	CycleStrict CycleMode = "strict"

	// CycleFlexible allows unbounded entry/exit alternation, each exit
	// closing a journey and each following entry opening a new one.
	CycleFlexible CycleMode = "flexible"
)

// CycleModeFor maps the allow_multiple_attendance flag to a mode. The flag
// is read from the settings store inside the recording transaction, never
// cached.
func CycleModeFor(allowMultiple bool) CycleMode {
	if allowMultiple {
		return CycleFlexible
	}
	return CycleStrict
}

// NextType classifies the next check-in given today's prior record types in
// ascending time order. It is a pure function; the recorder re-evaluates it
// against the live record count inside the transaction.
//
// The server is authoritative: a client-suggested type is accepted only when
// it matches the classification, so a stale terminal can never corrupt the
// cycle.
func NextType(prior []RecordType, mode CycleMode) (RecordType, error) {
	if mode == CycleFlexible {
		if len(prior) == 0 {
			return TypeEntry, nil
		}
		if prior[len(prior)-1] == TypeEntry {
			return TypeExit, nil
		}
		// Last record was an exit: a new journey starts the same day.
		return TypeEntry, nil
	}

	switch len(prior) {
	case 0:
		return TypeEntry, nil
	case 1:
		if prior[0] == TypeEntry {
			return TypeExit, nil
		}
		return "", ErrInvalidSequence
	default:
		return "", ErrDailyLimitReached
	}
}
