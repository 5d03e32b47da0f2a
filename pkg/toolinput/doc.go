// Package toolinput turns the single string argument an agent passes to a tool
// into typed arguments. Parse accepts strict JSON, or a relaxed form with
// unquoted keys, single-quoted strings and trailing commas when leniency is
// requested; Rules checks field presence and primitive types on the parsed
// map before Decode copies it into a struct.
package toolinput
