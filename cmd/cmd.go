// Package cmd ...
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Dyastin-0/hexrw/hexdump"
	"github.com/Dyastin-0/hexrw/logger"
	"github.com/Dyastin-0/hexrw/poke"
	"github.com/Dyastin-0/hexrw/progress"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

const (
	VERSION = "0.1.0"

	maxDelay = 255
	maxWidth = 255
)

func New() *cli.Command {
	return &cli.Command{
		Name:      "hexrw",
		Usage:     "a CLI utility to read and write hexadecimal values to a file",
		UsageText: "hexrw [-w \"1f 8b 08\"] [-r 3] [-d 1] <file>",
		ArgsUsage: "<file>",
		Version:   VERSION,
		Flags:     defaultFlags(),
		Action:    hexrwAction,
	}
}

func defaultFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "write",
			Aliases: []string{"w"},
			Usage:   "quoted bytes to write in hexadecimal format without 0x (e.g.: \"1f 8b 08\")",
		},
		&cli.IntFlag{
			Name:    "read",
			Aliases: []string{"r"},
			Usage:   "how many bytes to read after the write operation",
		},
		&cli.IntFlag{
			Name:    "delay",
			Aliases: []string{"d"},
			Usage:   "delay between the write and read operations in seconds (0-255)",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "bytes per hexdump line (1-255)",
			Value: hexdump.DefaultWidth,
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "append a JSON log of every operation to this file",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "mirror the operation log to stderr",
		},
	}
}

func hexrwAction(ctx context.Context, cmd *cli.Command) error {
	req, err := newRequest(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	p := poke.NewPoker(cmd.Writer, log)
	p.Sleep = sleeper(cmd.ErrWriter)

	return p.Run(req)
}

func newRequest(cmd *cli.Command) (*poke.Request, error) {
	if cmd.NArg() != 1 {
		return nil, &poke.UsageError{Msg: "exactly one file argument is required"}
	}

	delay := int64(cmd.Int("delay"))
	if delay < 0 || delay > maxDelay {
		return nil, &poke.UsageError{Msg: fmt.Sprintf("delay must be between 0 and %d seconds, got %d", maxDelay, delay)}
	}

	width := int64(cmd.Int("width"))
	if width < 1 || width > maxWidth {
		return nil, &poke.UsageError{Msg: fmt.Sprintf("width must be between 1 and %d, got %d", maxWidth, width)}
	}

	return &poke.Request{
		Path:     cmd.Args().First(),
		Payload:  cmd.String("write"),
		HasWrite: cmd.IsSet("write"),
		ReadLen:  int(cmd.Int("read")),
		HasRead:  cmd.IsSet("read"),
		Delay:    time.Duration(delay) * time.Second,
		Width:    int(width),
	}, nil
}

func newLogger(cmd *cli.Command) (logger.Logger, error) {
	log := logger.New()
	path := cmd.String("log-file")

	var err error
	switch {
	case cmd.Bool("verbose"):
		err = log.InitMultiWriter(cmd.ErrWriter, path)
	case path != "":
		err = log.Init(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set up log: %w", err)
	}

	return log, nil
}

// sleeper draws a countdown on w while waiting when w is a terminal.
func sleeper(w io.Writer) func(time.Duration) {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return time.Sleep
	}

	return func(d time.Duration) {
		p := progress.New(w, time.Second)
		bar := p.NewBar(d, "waiting")
		p.Sleep(d, bar)
		p.Wait()
	}
}
