package optional

// IncompleteError is returned by generated Build operations when a
// required field is missing. Partial is the receiver the failed call was
// made on, unchanged, so the caller can inspect or retry:
//
//	var incomplete *optional.IncompleteError[OptionalOrder]
//	if errors.As(err, &incomplete) {
//		retry(incomplete.Partial)
//	}
type IncompleteError[P any] struct {
	// Partial is the original partial instance, untouched.
	Partial P
}

func (e *IncompleteError[P]) Error() string {
	return "optional: partial value is incomplete"
}
