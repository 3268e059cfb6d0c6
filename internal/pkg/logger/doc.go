// Package logger provides the leveled Logger used across the IDEA service.
//
// Records are written through log/slog, as text to a console stream or as
// JSON to a size-rotated file. InitLogger and GetLogger manage a process-wide
// instance; New builds an independent one.
package logger
