package logger

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// defaultMaxSizeMB caps the active log file when no rotation size is
// configured.
const defaultMaxSizeMB = 100

// FileConfig configures rotating file output for the service log.
type FileConfig struct {
	// Path is the log file location.
	Path string
	// MaxSizeMB is the size in megabytes at which the file rotates.
	// Zero applies defaultMaxSizeMB.
	MaxSizeMB int
	// MaxFiles is the number of rotated files retained. Zero keeps all.
	MaxFiles int
}

// NewFileWriter returns a writer that appends to cfg.Path, rotating by
// size and gzip-compressing rotated files.
func NewFileWriter(cfg FileConfig) io.Writer {
	size := cfg.MaxSizeMB
	if size <= 0 {
		size = defaultMaxSizeMB
	}
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    size,
		MaxBackups: cfg.MaxFiles,
		Compress:   true,
	}
}
