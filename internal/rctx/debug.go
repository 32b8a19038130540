package rctx

import "fmt"

// debug is set at compile time to enable panic-on-duplicate-id builds,
// the same -ldflags -X switch internal/ir.debug uses in the teacher
// repo for its own "this should never happen" invariant
// (unsupportedNode). Attempting to key a symbol-table id that is
// already present (without going through KeyReplacementOfType) is the
// equivalent invariant violation here: it means a builder mis-tracked
// which ids it had already claimed, not a malformed document. Default
// (debug == "0") degrades to a returned error instead of crashing the
// process, per the REDESIGN FLAG in spec.md 9 ("surface a typed error
// instead of aborting the process").
var debug = "0"

func duplicateID(kind, id string) error {
	if debug == "1" {
		panic(fmt.Sprintf("rctx: duplicate %s id %q", kind, id))
	}
	return fmt.Errorf("rctx: duplicate %s id %q", kind, id)
}
