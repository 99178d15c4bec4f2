// Package errors provides the standard way for foundation modules to create
// errors.
//
// Package: errors
// Title: Standard Error Construction for the cskit Foundation
// Description: An ErrorBuilder tags every error with its module and operation
//              and a core error code. Module helpers (CstrOutOfRange,
//              RxCompile, ParsexInvalid, FilexNotFound, ...) keep codes and
//              detail keys consistent, so callers can branch on
//              errors.Is(err, cstr.ErrOutOfRange) or mdwerror.HasCode.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-09-02 v0.2.0: Codes taken from core/error
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleCstr).
//		Operation("SplitAt").
//		Message("split position out of range").
//		Code(mdwerror.CodeOutOfRange).
//		Detail("pos", pos).
//		Build()
package errors
