package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetA/vgrl/pkg/fault"
	"github.com/planetA/vgrl/pkg/spawn"
)

var req = spawn.Request{
	Executable: "C:\\app\\target.exe",
	Parameter:  "--flag",
	Directory:  "C:\\app",
}

func TestNewRecord_Success(t *testing.T) {
	r := NewRecord("./vgrl.dll", 1337, req, &spawn.Outcome{Succeeded: true, ProcessID: 7, ThreadID: 8}, nil)

	assert.True(t, r.Succeeded)
	assert.Empty(t, r.Kind)
	assert.Zero(t, r.Code)
	assert.Equal(t, uint32(7), r.ProcessID)
	assert.Equal(t, uint32(8), r.ThreadID)
}

func TestNewRecord_Failure(t *testing.T) {
	err := fault.New(fault.LibraryLoadFailed, "./vgrl.dll", syscall.Errno(126))
	r := NewRecord("./vgrl.dll", 1337, req, nil, err)

	assert.False(t, r.Succeeded)
	assert.Equal(t, "LibraryLoadFailed", r.Kind)
	assert.Equal(t, uint32(126), r.Code)
	assert.Equal(t, err.Error(), r.Message)
}

func TestEncode_JSONFields(t *testing.T) {
	r := NewRecord("./vgrl.dll", 1337, req, &spawn.Outcome{Succeeded: true, ProcessID: 7}, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, r))

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))

	assert.Equal(t, "./vgrl.dll", fields["library"])
	assert.Equal(t, float64(1337), fields["ordinal"])
	assert.Equal(t, "--flag", fields["parameter"])
	assert.Equal(t, true, fields["succeeded"])
	assert.NotContains(t, fields, "kind")
}

func TestWriteFile_Msgpack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.msgpack")
	err := fault.New(fault.LaunchFailed, req.Executable, syscall.Errno(2))
	r := NewRecord("./vgrl.dll", 1337, req, &spawn.Outcome{LastError: 2}, err)

	require.NoError(t, WriteFile(path, FormatMsgpack, r))

	f, ferr := os.Open(path)
	require.NoError(t, ferr)
	defer f.Close()

	got, derr := Decode(f, FormatMsgpack)
	require.NoError(t, derr)
	assert.Equal(t, "LaunchFailed", got.Kind)
	assert.Equal(t, uint32(2), got.Code)
	assert.True(t, r.Time.Equal(got.Time))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("msgpack")
	require.NoError(t, err)
	assert.Equal(t, FormatMsgpack, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
