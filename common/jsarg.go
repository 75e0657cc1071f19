package common

import "encoding/json"

// JSArg wraps a single argument to a script-execution command. Arguments in
// one call may be of differing types; each JSArg carries its own value and
// encodes independently of its siblings. A json.RawMessage value passes
// through pre-serialized.
type JSArg struct {
	value any
}

// Arg wraps any JSON-serializable value as a script argument.
func Arg(v any) JSArg { return JSArg{value: v} }

// Args wraps a heterogeneous list of values as script arguments.
func Args(vs ...any) []JSArg {
	args := make([]JSArg, len(vs))
	for i, v := range vs {
		args[i] = Arg(v)
	}
	return args
}

func (a JSArg) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}
