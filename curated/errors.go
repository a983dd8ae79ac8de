// Package curated implements the error type used throughout nescore.
//
// Unlike a plain fmt.Errorf, a curated error de-duplicates repeated adjacent
// message parts when a lower layer's error is wrapped by a caller that
// prefixes the same context again. This means each layer of the emulation
// core can wrap the errors it receives without worrying about whether the
// immediate caller already mentioned the same package name.
//
// For example:
//
//	func (mc *CPU) step() error {
//		err := mc.fetch()
//		if err != nil {
//			return curated.Errorf("cpu: %v", err)
//		}
//		...
//	}
//
// if fetch() also wraps its errors with "cpu: " the final message will read
// "cpu: unimplemented instruction (...)" and not
// "cpu: cpu: unimplemented instruction (...)".
package curated

import (
	"fmt"
	"strings"
)

// curated implements the error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. Note that unlike fmt.Errorf the first
// argument is named "pattern" rather than "format": the pattern string is
// also used by Is() and Has() to identify the error, so "pattern" is the
// more descriptive name in that context.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message, with duplicate adjacent
// message parts removed. Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny reports whether err is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err is a curated error created from the given pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	er, ok := err.(curated)
	if !ok {
		return false
	}
	return er.pattern == pattern
}

// Has reports whether err is a curated error created from the given pattern,
// or wraps (directly as one of its values) a curated error that does.
func Has(err error, pattern string) bool {
	if err == nil || !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
