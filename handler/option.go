package handler

import (
	"log/slog"
	"time"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/ids"
)

// WriterOption configures a Writer.
type WriterOption interface {
	applyWriter(*Writer)
}

// ReaderOption configures a Reader.
type ReaderOption interface {
	applyReader(*Reader)
}

// WithLogger sets the logger used for progress lines of Writer or Reader.
func WithLogger(l *slog.Logger) LoggerOption {
	return LoggerOption{l}
}

// LoggerOption is the option type returned by WithLogger.
type LoggerOption struct{ l *slog.Logger }

func (o LoggerOption) applyWriter(w *Writer) { w.logger = o.l }
func (o LoggerOption) applyReader(r *Reader) { r.logger = o.l }

// WithErrorHandler replaces the default error logger of Writer or Reader.
// It receives every failure that is reported to clients as an internal error.
func WithErrorHandler(h msgbox.ErrorHandler) ErrorHandlerOption {
	return ErrorHandlerOption{h}
}

// ErrorHandlerOption is the option type returned by WithErrorHandler.
type ErrorHandlerOption struct{ h msgbox.ErrorHandler }

func (o ErrorHandlerOption) applyWriter(w *Writer) { w.errHandler = o.h }
func (o ErrorHandlerOption) applyReader(r *Reader) { r.errHandler = o.h }

// WithIDGenerator replaces the default UUID generator of the Writer.
func WithIDGenerator(g ids.Generator) IDGeneratorOption {
	return IDGeneratorOption{g}
}

// IDGeneratorOption is the option type returned by WithIDGenerator.
type IDGeneratorOption struct{ g ids.Generator }

func (o IDGeneratorOption) applyWriter(w *Writer) { w.ids = o.g }

// WithClock replaces time.Now as the source of createdAt.
func WithClock(now func() time.Time) ClockOption {
	return ClockOption(now)
}

// ClockOption is the option type returned by WithClock.
type ClockOption func() time.Time

func (o ClockOption) applyWriter(w *Writer) { w.now = o }
