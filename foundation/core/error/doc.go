// Package error provides the structured error type of the cskit foundation.
//
// Package: error
// Title: cskit Error Handling
// Description: Errors carry a message, a Code, a Severity, an optional cause,
//              the failing operation and key/value details. Packages declare
//              sentinel errors with a code; errors.Is matches any error of the
//              same code, so callers can test for a category without caring
//              about attached details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-09-02 v0.2.0: Code based matching for sentinels
//
// Usage:
//
//	import mdwerror "github.com/msto63/cskit/foundation/core/error"
//
//	var ErrOutOfRange = mdwerror.New("index out of range").
//		WithCode(mdwerror.CodeOutOfRange)
//
//	err := mdwerror.New("codepoint index out of range").
//		WithCode(mdwerror.CodeOutOfRange).
//		WithOperation("cstr.CodepointAt").
//		WithDetail("index", 12)
//
//	errors.Is(err, ErrOutOfRange) // true
package error
