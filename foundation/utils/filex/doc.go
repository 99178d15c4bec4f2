// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides file helpers on top of afero.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-09-03 v0.2.0: afero backed record reading, hex dumps, MeName

// Package filex provides file helpers for record oriented binary input.
//
// All functions that touch a filesystem take an afero.Fs, so callers pass
// afero.NewOsFs() in production and afero.NewMemMapFs() in tests:
//
//	f, err := filex.OpenFile(fs, "track.bin")
//	if err != nil {
//		return err // FILE_NOT_FOUND or FILE_ACCESS
//	}
//	defer f.Close()
//
//	rec := make([]byte, 12)
//	for {
//		ok, err := filex.ReadBytes(f, rec)
//		if err != nil || !ok {
//			break
//		}
//		...
//	}
//
// HexDump and HexString render raw bytes for diagnostics. MeName returns
// the program name from argv[0] for usage and version output.
package filex
