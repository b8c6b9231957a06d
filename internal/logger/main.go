// Package logger sets up the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter sends each event to the writer for its level group.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	WarnWriter  io.Writer
}

// WriteLevel implements zerolog.LevelWriter.
// Trace, debug and info go to InfoWriter, warn to WarnWriter, the rest to ErrorWriter.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	switch {
	case l == zerolog.Disabled:
		return 0, nil
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter
	}

	return w.Write(p) //nolint:wrapcheck
}

// Init replaces log.Logger according to cfg.
// With neither console nor file enabled the logger discards everything.
func Init(cfg Log) error {
	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	stack := false

	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler

	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fw, err := newRollingFile(cfg.File)
		if err != nil {
			return err
		}

		writers = append(writers, fw)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.AppName)).
		With().Timestamp().Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		ctx = ctx.Stack().Caller()
	case cfg.ReportCaller:
		ctx = ctx.Caller()
	case stack:
		ctx = ctx.Stack()
	}

	log.Logger = ctx.Logger()

	return nil
}

// newRollingFile splits file output by level into lumberjack rotated files.
func newRollingFile(cfg LogFile) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint:mnd
		return nil, errors.Wrapf(err, "can't create log directory %s", cfg.Path)
	}

	return &LevelWriter{
		ErrorWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.Path, cfg.ErrorLog),
			MaxSize:    cfg.ErrorMaxSize,
			MaxAge:     cfg.ErrorMaxAge,
			MaxBackups: cfg.ErrorMaxBackups,
		},
		InfoWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.Path, cfg.InfoLog),
			MaxSize:    cfg.InfoMaxSize,
			MaxAge:     cfg.InfoMaxAge,
			MaxBackups: cfg.InfoMaxBackups,
		},
		WarnWriter: &lumberjack.Logger{
			Filename:   path.Join(cfg.Path, cfg.WarnLog),
			MaxSize:    cfg.WarnMaxSize,
			MaxAge:     cfg.WarnMaxAge,
			MaxBackups: cfg.WarnMaxBackups,
		},
	}, nil
}

// NewConsoleWriter builds the console output, as JSON or through
// zerolog.ConsoleWriter. Every level goes to stderr unless Console.Stdout
// asks for trace, debug and info on stdout. Colours are only used on a
// terminal.
func NewConsoleWriter(cfg Log) io.Writer {
	info := os.Stderr
	if cfg.Console.Stdout {
		info = os.Stdout
	}

	lw := LevelWriter{
		ErrorWriter: os.Stderr,
		InfoWriter:  info,
		WarnWriter:  os.Stderr,
	}

	if cfg.Console.UseConsoleWriter {
		lw.ErrorWriter = newConsoleWriter(os.Stderr)
		lw.InfoWriter = newConsoleWriter(info)
		lw.WarnWriter = newConsoleWriter(os.Stderr)
	}

	return &lw
}

func newConsoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    !isTerminal(f),
		TimeFormat: zerolog.TimeFieldFormat,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
