// Package poke writes hex payloads to a file and dumps what it reads back.
package poke

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Dyastin-0/hexrw/hexdump"
	"github.com/Dyastin-0/hexrw/hexparse"
	"github.com/Dyastin-0/hexrw/logger"
)

// Request is one invocation against a single target file.
type Request struct {
	Path string

	// Payload is parsed by hexparse when HasWrite is set.
	Payload  string
	HasWrite bool

	ReadLen int
	HasRead bool

	Delay time.Duration
	Width int
}

type Poker struct {
	out io.Writer
	log logger.Logger

	// Sleep blocks for the delay between write and read.
	Sleep func(time.Duration)
}

func NewPoker(out io.Writer, log logger.Logger) *Poker {
	if log == nil {
		log = logger.New()
	}

	return &Poker{
		out:   out,
		log:   log,
		Sleep: time.Sleep,
	}
}

// Run opens req.Path, writes the payload, waits, reads back and renders.
// Nothing is opened unless the request is valid and the payload parses.
func (p *Poker) Run(req *Request) error {
	if err := req.validate(); err != nil {
		return err
	}

	log := p.log.WithStr("path", req.Path)

	var payload []byte
	if req.HasWrite {
		data, err := hexparse.Parse(req.Payload)
		if err != nil {
			log.WithStr("payload", req.Payload).Error(err.Error())
			return err
		}
		payload = data
	}

	file, err := os.OpenFile(req.Path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return &FileError{Op: "open", Path: req.Path, Err: err}
	}
	defer file.Close()

	log.Debug("open")

	if req.HasWrite {
		if err := p.write(log, file, req, payload); err != nil {
			return err
		}
	}

	if req.Delay > 0 {
		log.WithAny("delay", req.Delay.String()).Debug("delay")
		p.Sleep(req.Delay)
	}

	if !req.HasRead {
		return nil
	}

	data, err := p.read(log, file, req)
	if err != nil {
		return err
	}

	if err := hexdump.Write(p.out, data, req.Width); err != nil {
		return fmt.Errorf("failed to render hexdump: %w", err)
	}

	log.WithInt("lines", len(hexdump.Lines(data, req.Width))).Debug("render")

	return nil
}

func (p *Poker) write(log logger.Logger, file *os.File, req *Request, payload []byte) error {
	start, err := file.Seek(0, io.SeekCurrent)
	seekable := err == nil

	if _, err := file.Write(payload); err != nil {
		return &FileError{Op: "write", Path: req.Path, Err: err}
	}

	rewound := false
	if seekable && isRegular(file) {
		if _, err := file.Seek(start, io.SeekStart); err != nil {
			return &FileError{Op: "write", Path: req.Path, Err: err}
		}
		rewound = true
	}

	log.WithInt("bytes", len(payload)).WithBool("rewound", rewound).Info("write")

	return nil
}

// read performs a single read so device nodes return one response.
func (p *Poker) read(log logger.Logger, file *os.File, req *Request) ([]byte, error) {
	data := make([]byte, req.ReadLen)

	n, err := file.Read(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &FileError{Op: "read", Path: req.Path, Err: err}
	}

	log = log.WithInt("want", req.ReadLen).WithInt("bytes", n)

	if n != req.ReadLen {
		log.Warn("short read")
		return nil, &ShortReadError{Path: req.Path, Want: req.ReadLen, Got: n}
	}

	log.Info("read")

	return data[:n], nil
}

func (r *Request) validate() error {
	if !r.HasWrite && !r.HasRead {
		return ErrUsage
	}
	if r.HasRead && r.ReadLen < 0 {
		return &UsageError{Msg: fmt.Sprintf("read length must not be negative, got %d", r.ReadLen)}
	}
	if r.Delay < 0 {
		return &UsageError{Msg: "delay must not be negative"}
	}
	return nil
}

func isRegular(file *os.File) bool {
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
