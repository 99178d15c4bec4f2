package cmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwlog "github.com/msto63/cskit/foundation/core/log"
)

type testState struct {
	*globalState
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestState(t *testing.T, stdin string, files map[string][]byte) *testState {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, data := range files {
		if err := afero.WriteFile(fs, name, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ts := &testState{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	ts.globalState = &globalState{
		fs:     fs,
		stdin:  strings.NewReader(stdin),
		stdout: ts.stdout,
		stderr: ts.stderr,
		now:    func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
		home:   "/home/u",
		logger: mdwlog.Discard(),
	}
	return ts
}

func (ts *testState) run(args ...string) error {
	return execute(context.Background(), ts.globalState, args)
}

func record(lon, lat, ticks int32) []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[0:], uint32(lon))
	binary.LittleEndian.PutUint32(b[4:], uint32(lat))
	binary.LittleEndian.PutUint32(b[8:], uint32(ticks))
	return b
}

func trackFiles() map[string][]byte {
	data := append(record(1339000, 5252000, 1509707663), record(-7400600, 4071280, 1009843200)...)
	return map[string][]byte{"/data/track.bin": data}
}

const (
	line2017 = "2017/11/03, 11:14:23 (UTC)\t13.39000\t52.52000\ttrack.bin"
	line2002 = "2002/01/01, 00:00:00 (UTC)\t-74.00600\t40.71280\ttrack.bin"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: []string{"/data/track.bin"},
			want: line2017 + "\n" + line2002 + "\n",
		},
		{
			name: "header and offsets",
			args: []string{"-t", "-o", "/data/track.bin"},
			want: "Remark\tLongitude\tLatitude\tLabel\tOffset\n" + line2017 + "\t0\n" + line2002 + "\t12\n",
		},
		{
			name: "combined short flags",
			args: []string{"-to", "-y", "2010", "/data/track.bin"},
			want: "Remark\tLongitude\tLatitude\tLabel\tOffset\n" + line2017 + "\t0\n",
		},
		{
			name: "max year",
			args: []string{"-Y", "2003", "/data/track.bin"},
			want: line2002 + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestState(t, "", trackFiles())
			if err := ts.run(tt.args...); err != nil {
				t.Fatalf("run() error = %v\n%s", err, ts.stderr)
			}
			if ts.stdout.String() != tt.want {
				t.Errorf("stdout =\n%q\nwant\n%q", ts.stdout.String(), tt.want)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no file", nil, "No file"},
		{"reversed years", []string{"-y", "2010", "-Y", "2005", "/data/track.bin"}, "'-Y' should be greater than '-y'"},
		{"year out of limits", []string{"-y", "1960", "/data/track.bin"}, "Min year out of limits"},
		{"bad hex", []string{"-e", "0x1k", "/data/track.bin"}, "invalid argument"},
		{"bad int", []string{"-x", "12a", "/data/track.bin"}, "invalid argument"},
		{"bad equals option", []string{"foo=1", "/data/track.bin"}, "invalid input"},
		{"missing file", []string{"/data/nope.bin"}, "nope.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestState(t, "", trackFiles())
			err := ts.run(tt.args...)
			if err == nil {
				t.Fatal("run() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
			if !strings.HasPrefix(ts.stderr.String(), "Error: ") {
				t.Errorf("stderr = %q", ts.stderr.String())
			}
		})
	}
}

func TestScanDebugAndEquals(t *testing.T) {
	ts := newTestState(t, "", trackFiles())
	if err := ts.run("--debug", "ox=0x10", "-X", "aa:bb", "/data/track.bin"); err != nil {
		t.Fatal(err)
	}
	out := ts.stdout.String()
	for _, want := range []string{"optX        = 16", "optXStr     = 'aa:bb'", "Match: 'aa:bb'", "$1 = 'bb'", line2002} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestScanEqualsBeatsConfig(t *testing.T) {
	files := trackFiles()
	files["/etc/scan.toml"] = []byte("[scan]\noptx = \"4K\"\n")

	ts := newTestState(t, "", files)
	if err := ts.run("--config", "/etc/scan.toml", "--debug", "ox=0x10", "/data/track.bin"); err != nil {
		t.Fatal(err)
	}
	if out := ts.stdout.String(); !strings.Contains(out, "optX        = 16\n") {
		t.Errorf("ox= argument lost against config:\n%s", out)
	}
}

func TestScanOutputFile(t *testing.T) {
	ts := newTestState(t, "", trackFiles())
	if err := ts.run("--output", "/out.tsv", "/data/track.bin"); err != nil {
		t.Fatal(err)
	}
	if ts.stdout.Len() != 0 {
		t.Errorf("stdout = %q", ts.stdout.String())
	}
	data, err := afero.ReadFile(ts.fs, "/out.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != line2017+"\n"+line2002+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestScanConfig(t *testing.T) {
	files := trackFiles()
	files["/etc/scan.toml"] = []byte("[scan]\nheader = true\nmin_year = 2010\n")
	files["/home/u/.config/cskit/cskit.yaml"] = []byte("scan:\n  max_year: 2003\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"explicit file", []string{"--config", "/etc/scan.toml", "/data/track.bin"}, "Remark\tLongitude\tLatitude\tLabel\n" + line2017 + "\n"},
		{"flag wins", []string{"--config", "/etc/scan.toml", "-y", "2002", "/data/track.bin"}, "Remark\tLongitude\tLatitude\tLabel\n" + line2017 + "\n" + line2002 + "\n"},
		{"discovered file", []string{"/data/track.bin"}, line2002 + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestState(t, "", files)
			if err := ts.run(tt.args...); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if ts.stdout.String() != tt.want {
				t.Errorf("stdout =\n%q\nwant\n%q", ts.stdout.String(), tt.want)
			}
		})
	}
}

func TestConfigErrors(t *testing.T) {
	files := trackFiles()
	files["/bad.toml"] = []byte("[log]\nlevel = \"loud\"\n")

	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"missing config", []string{"--config", "/nope.toml", "/data/track.bin"}, mdwerror.CodeConfigNotFound},
		{"invalid config", []string{"--config", "/bad.toml", "/data/track.bin"}, mdwerror.CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestState(t, "", files)
			err := ts.run(tt.args...)
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	ts := newTestState(t, "", nil)
	if err := ts.run("--log-level", "debug", "--log-format", "logfmt", "parse", "1"); err != nil {
		t.Fatal(err)
	}
	logs := ts.stderr.String()
	if !strings.Contains(logs, "run_id=") || !strings.Contains(logs, `message="classified 1 values"`) {
		t.Errorf("logs = %q", logs)
	}
	if !strings.Contains(logs, "logger=parse") {
		t.Errorf("logger name missing: %q", logs)
	}
}

func TestVersion(t *testing.T) {
	ts := newTestState(t, "", nil)
	if err := ts.run("version"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ts.stdout.String(), "skeleton v1.0.0\n") {
		t.Errorf("version = %q", ts.stdout.String())
	}

	ts = newTestState(t, "", nil)
	if err := ts.run("version", "--json"); err != nil {
		t.Fatal(err)
	}
	var info map[string]string
	if err := json.Unmarshal(ts.stdout.Bytes(), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", ts.stdout.String(), err)
	}
	if info["component"] != "skeleton" || info["toolkit"] != "1.0.0" {
		t.Errorf("info = %v", info)
	}

	ts = newTestState(t, "", nil)
	if err := ts.run("--version"); err != nil {
		t.Fatal(err)
	}
	if ts.stdout.String() != "skeleton v1.0.0\n" {
		t.Errorf("--version = %q", ts.stdout.String())
	}
}
