// Package signature describes native function signatures in YAML and
// compiles them into argument descriptors.
//
// A signature file lets a host declare how each builtin binds its
// arguments without writing the descriptor list by hand, and lets the
// argbind command bind ad-hoc argument lists against it.
//
// # Schema Overview
//
//	version: "1"
//	signatures:
//	  - name: repeat
//	    args:
//	      - name: text
//	        kind: string        # fixed-capacity string, capacity is required
//	        capacity: 32
//	        coerce: true
//	      - name: count
//	        kind: integer
//	        type: uint8         # int, int8 .. int64, uint, uint8 .. uint64, uintptr
//	        round: floor        # round (default), floor, ceil, trunc
//	        clamp: true
//	        optional: true
//	        default: 1
//	      - name: opts
//	        kind: object
//	        optional: true
//	        properties:
//	          - {name: sep, kind: text, default: ""}
//	      - kind: handle        # unnamed arguments become arg1, arg2, ...
//	        tag: file
//
// # Kinds
//
//   - number, boolean, text: float64, bool and string destinations
//   - string: a bounded args.Buffer of capacity bytes
//   - integer: any Go integer type, with rounding and clamping
//   - function: the callable itself, never coerced
//   - handle: the native payload behind a tagged handle
//   - ignore: consumes one position and keeps nothing
//   - object, array: nested properties bound by name or by position
//
// # Defaults
//
// A default is bound through the argument's own coercing transform before
// any call, so it obeys the same conversion, capacity and range rules as
// a real argument. Optional arguments that are absent keep it.
package signature
