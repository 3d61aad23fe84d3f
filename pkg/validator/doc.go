// Package validator provides rule-based input validation.
//
// Rules are plain values combining a check with the error reported when the
// check fails. Apply runs a set of rules and returns the collected
// ValidationErrors, or nil when everything passes.
package validator
