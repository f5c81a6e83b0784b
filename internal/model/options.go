package model

import "strings"

// nonAQFExtraSafe is the set of unencoded-but-writer-escaped characters that
// may additionally be marked safe outside of AQF mode.
const nonAQFExtraSafe = "!$*/;?@"

// aqfExtraSafe adds the quote sigil, which only loses its special meaning
// once AQF's "!" takes over as the quoting sigil.
const aqfExtraSafe = nonAQFExtraSafe + "'"

// Options carries the four orthogonal modes plus the encoder-only safe set.
// It is immutable once constructed; Validate never mutates it.
type Options struct {
	ImpliedList              bool
	ImpliedDict              bool
	AQF                      bool
	DistinguishEmptyListDict bool
	Safe                     string
}

// Validate checks the two option-level invariants from spec.md §3:
// implied_list/implied_dict are mutually exclusive, and Safe may only
// contain characters the writer is allowed to leave unencoded.
func (o Options) Validate() error {
	if o.ImpliedList && o.ImpliedDict {
		return NewOptionError(ErrMutuallyExclusiveOptions,
			"implied_list and implied_dict cannot both be set")
	}
	allowed := nonAQFExtraSafe
	if o.AQF {
		allowed = aqfExtraSafe
	}
	for _, c := range o.Safe {
		if !strings.ContainsRune(allowed, c) {
			return NewOptionError(ErrUnsafeCharInSafeSet,
				"character %q cannot be marked safe", c)
		}
	}
	return nil
}

// IsSafe reports whether b was named in the caller-supplied Safe set.
func (o Options) IsSafe(b byte) bool {
	return strings.IndexByte(o.Safe, b) >= 0
}
