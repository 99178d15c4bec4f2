// File: doc.go
// Title: Package Documentation for parsex
// Description: Package parsex classifies and parses command line
//              parameters held in cstr.Str values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

// Package parsex classifies and parses parameters.
//
// IsNumber tells integers from floats, ParseLong reads a decimal integer
// and ParseHexLong accepts either "0x" hexadecimal or a decimal with a
// binary size postfix:
//
//	parsex.ParseHexLong(cstr.New("0x1A")) // 26
//	parsex.ParseHexLong(cstr.New("4K"))   // 4096
//	parsex.ParseHexLong(cstr.New("2m"))   // 2097152
//
// CheckDateTime recognises "YYYY/MM/DD" and "YYYY/MM/DD, hh:mm:ss".
//
// Failures are *mdwerror.Error values with code INVALID_FORMAT, or
// OVERFLOW for numbers beyond 64 bits.
package parsex
