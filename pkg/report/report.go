// Package report writes a machine readable record of one launch run.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ugorji/go/codec"

	"github.com/planetA/vgrl/pkg/fault"
	"github.com/planetA/vgrl/pkg/spawn"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatMsgpack:
		return Format(s), nil
	}
	return "", fmt.Errorf("Unknown report format: %v", s)
}

type Record struct {
	Library    string `codec:"library"`
	Ordinal    uint16 `codec:"ordinal"`
	Executable string `codec:"executable"`
	Parameter  string `codec:"parameter,omitempty"`
	Directory  string `codec:"directory,omitempty"`

	Succeeded bool   `codec:"succeeded"`
	Kind      string `codec:"kind,omitempty"`
	Code      uint32 `codec:"code,omitempty"`
	Message   string `codec:"message,omitempty"`
	ProcessID uint32 `codec:"pid,omitempty"`
	ThreadID  uint32 `codec:"tid,omitempty"`

	Time time.Time `codec:"time"`
}

// NewRecord summarises a finished run. outcome may be nil when the run
// failed before the entry point was called.
func NewRecord(library string, ordinal uint16, req spawn.Request, outcome *spawn.Outcome, runErr error) *Record {
	r := &Record{
		Library:    library,
		Ordinal:    ordinal,
		Executable: req.Executable,
		Parameter:  req.Parameter,
		Directory:  req.Directory,
		Time:       time.Now().UTC(),
	}

	if outcome != nil {
		r.Succeeded = outcome.Succeeded
		r.ProcessID = outcome.ProcessID
		r.ThreadID = outcome.ThreadID
	}

	if runErr != nil {
		r.Succeeded = false
		r.Message = runErr.Error()
		r.Code = uint32(fault.CodeOf(runErr))
		if kind := fault.KindOf(runErr); kind != 0 {
			r.Kind = kind.String()
		}
	}

	return r
}

func handle(format Format) (codec.Handle, error) {
	switch format {
	case FormatJSON:
		h := new(codec.JsonHandle)
		h.Indent = 2
		return h, nil
	case FormatMsgpack:
		h := new(codec.MsgpackHandle)
		h.WriteExt = true
		return h, nil
	}
	return nil, fmt.Errorf("Unknown report format: %v", format)
}

func Encode(w io.Writer, format Format, r *Record) error {
	h, err := handle(format)
	if err != nil {
		return err
	}
	return codec.NewEncoder(w, h).Encode(r)
}

func Decode(rd io.Reader, format Format) (*Record, error) {
	h, err := handle(format)
	if err != nil {
		return nil, err
	}

	r := new(Record)
	if err := codec.NewDecoder(rd, h).Decode(r); err != nil {
		return nil, err
	}
	return r, nil
}

// WriteFile replaces path with the encoded record.
func WriteFile(path string, format Format, r *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Failed to create report (%v): %v", path, err)
	}

	if err := Encode(f, format, r); err != nil {
		f.Close()
		return fmt.Errorf("Failed to encode report: %v", err)
	}

	return f.Close()
}
