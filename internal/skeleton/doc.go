// Package skeleton implements the skeleton command: its option model,
// the record scanner and the diagnostic reports.
//
// A run reads fixed size records of three little-endian int32 values
// (longitude and latitude in 1e-5 degrees, unix ticks) from each input
// file and prints the records whose ticks fall into the year range given
// with -y and -Y as tab separated lines:
//
//	Remark	Longitude	Latitude	Label[	Offset]
//
// Options come from flags, CSKIT_* environment variables and an optional
// TOML or YAML file with the sections [log] and [scan], in that order of
// precedence.
package skeleton
