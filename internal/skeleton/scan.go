// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     skeleton
// Description: Record scanner of the skeleton command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package skeleton

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwlog "github.com/msto63/cskit/foundation/core/log"
	"github.com/msto63/cskit/foundation/utils/bytex"
	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/filex"
	"github.com/msto63/cskit/foundation/utils/timex"
)

// RecordSize is the size of one input record: little-endian int32
// longitude, latitude and ticks
const RecordSize = 12

// Record is one decoded input record
type Record struct {
	Offset int64
	Lon    float64
	Lat    float64
	Ticks  int64
	Label  cstr.Str
}

// Stats counts the records of a run
type Stats struct {
	Files     int
	Records   int
	Printed   int
	Invalid   int
	OutOfTime int
	Truncated int
}

// Scanner prints the records of the input files that fall into the
// configured time range
type Scanner struct {
	fs     afero.Fs
	opts   Options
	out    io.Writer
	logger *mdwlog.Logger
	stats  Stats
}

// NewScanner creates a scanner. opts must have been validated.
func NewScanner(fs afero.Fs, opts Options, out io.Writer, logger *mdwlog.Logger) *Scanner {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Scanner{fs: fs, opts: opts, out: out, logger: logger}
}

// Run scans every file of opts and writes one tab separated line per
// accepted record
func Run(ctx context.Context, fs afero.Fs, opts Options, out io.Writer, logger *mdwlog.Logger) (Stats, error) {
	s := NewScanner(fs, opts, out, logger)
	err := s.Run(ctx)
	return s.Stats(), err
}

// Stats returns the counters collected so far
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Run prints the header and scans all files in order
func (s *Scanner) Run(ctx context.Context) error {
	if s.opts.Header {
		if err := s.printHeader(); err != nil {
			return err
		}
	}

	for _, name := range s.opts.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.scanFile(ctx, name); err != nil {
			return err
		}
	}

	s.logger.Info("scan finished", mdwlog.Fields{
		"files":       s.stats.Files,
		"records":     s.stats.Records,
		"printed":     s.stats.Printed,
		"invalid":     s.stats.Invalid,
		"out_of_time": s.stats.OutOfTime,
	})
	return nil
}

func (s *Scanner) scanFile(ctx context.Context, name string) error {
	f, err := filex.OpenFile(s.fs, name)
	if err != nil {
		return err
	}
	defer f.Close()

	logger := s.logger.WithField("file", name)
	if size, err := filex.Size(f); err == nil {
		logger.Debug("scanning file", mdwlog.Fields{"size": filex.FormatSize(size)})
		if size%RecordSize != 0 {
			logger.Warn("file size is not a multiple of the record size", mdwlog.Fields{"size": size})
		}
	}
	s.stats.Files++

	label := filex.MeName(name)
	buf := make([]byte, RecordSize)
	var offset int64
	for ; ; offset += RecordSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := filex.ReadBytes(f, buf)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				s.stats.Truncated++
				logger.Warn("truncated record at end of file", mdwlog.Fields{"offset": offset})
				return nil
			}
			return err
		}
		if !ok {
			return nil
		}
		s.stats.Records++

		rec, err := decodeRecord(buf, offset, label)
		if err != nil {
			s.stats.Invalid++
			logger.Debug("invalid coordinates", mdwlog.Fields{"offset": offset, "error": err.Error()})
			continue
		}
		if !s.opts.Range.Contains(rec.Ticks) {
			s.stats.OutOfTime++
			continue
		}
		if err := s.printEntry(rec); err != nil {
			return err
		}
		s.stats.Printed++
	}
}

func decodeRecord(buf []byte, offset int64, label cstr.Str) (Record, error) {
	lon, lat, err := bytex.ToWGS84(bytex.ToInt32(buf[0:4]), bytex.ToInt32(buf[4:8]))
	if err != nil {
		return Record{}, err
	}
	return Record{
		Offset: offset,
		Lon:    lon,
		Lat:    lat,
		Ticks:  int64(bytex.ToInt32(buf[8:12])),
		Label:  label,
	}, nil
}

func (s *Scanner) printHeader() error {
	line := cstr.New("Remark\tLongitude\tLatitude\tLabel")
	if s.opts.PrintOffset {
		line.CatString(line, "\tOffset")
	}
	return s.writeLine(line)
}

func (s *Scanner) printEntry(rec Record) error {
	var line cstr.Str
	line.Setf("%s\t%.5f\t%.5f\t%s", timex.TicksToDateTime(rec.Ticks, " (UTC)"), rec.Lon, rec.Lat, rec.Label)
	if s.opts.PrintOffset {
		line.CatString(line, fmt.Sprintf("\t%d", rec.Offset))
	}
	return s.writeLine(line)
}

func (s *Scanner) writeLine(line cstr.Str) error {
	line.CatString(line, "\n")
	if _, err := s.out.Write(line.Bytes()); err != nil {
		return mdwerror.Wrap(err, "write failed").
			WithCode(mdwerror.CodeFileAccess).
			WithOperation("skeleton.write")
	}
	return nil
}
