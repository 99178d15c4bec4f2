// File: doc.go
// Title: Package Documentation for bytex
// Description: Package bytex decodes raw record fields.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

// Package bytex decodes the fields of binary records: little-endian
// integers, byte swapped 32 bit values and fixed point coordinates.
//
//	lon, lat, err := bytex.ToWGS84(bytex.ToInt32(rec[0:4]), bytex.ToInt32(rec[4:8]))
package bytex
