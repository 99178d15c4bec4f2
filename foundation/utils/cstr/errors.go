// File: errors.go
// Title: String Error Sentinels
// Description: Sentinel errors of the cstr package. Returned errors carry
//              operation and index details but match these sentinels
//              through errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24

package cstr

import (
	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

var (
	// ErrNotFound reports a search without a match
	ErrNotFound = mdwerror.New("not found").WithCode(mdwerror.CodeNotFound)

	// ErrOutOfRange reports an index, offset or width outside the content
	ErrOutOfRange = mdwerror.New("out of range").WithCode(mdwerror.CodeOutOfRange)

	// ErrMalformed reports bytes that do not decode as UTF-8
	ErrMalformed = mdwerror.New("malformed UTF-8").WithCode(mdwerror.CodeMalformedEncoding)

	// ErrConversionUnavailable reports an encoding without a converter
	ErrConversionUnavailable = mdwerror.New("conversion unavailable").WithCode(mdwerror.CodeConversionUnavailable)

	// ErrConversionFailed reports a conversion that stopped mid-stream
	ErrConversionFailed = mdwerror.New("conversion failed").WithCode(mdwerror.CodeConversionFailed)
)
