package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFile is where GetLogger writes: projgen/projgen.log under the
// user config directory, or the temp directory when that is unknown. It is
// never inside the project being generated.
func DefaultLogFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "projgen", "projgen.log")
}

// Logger represents a generator run logger.
type Logger struct {
	logger        *log.Logger
	closer        io.Closer
	jsonMode      bool
	correlationID string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the process-wide logger writing to DefaultLogFile.
func GetLogger() *Logger {
	once.Do(func() {
		globalLogger = NewLogger(DefaultLogFile())
	})
	return globalLogger
}

// NewLogger creates a logger backed by a rotating log file.
func NewLogger(filename string) *Logger {
	logFile := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	l := NewLoggerTo(logFile)
	l.closer = logFile
	return l
}

// NewLoggerTo creates a logger writing to w. Environment switches are read once here.
func NewLoggerTo(w io.Writer) *Logger {
	l := &Logger{
		logger: log.New(w, "", log.LstdFlags),
	}
	if os.Getenv("PROJGEN_JSON_LOGS") == "1" {
		l.jsonMode = true
	}
	if cid := os.Getenv("PROJGEN_CORRELATION_ID"); cid != "" {
		l.correlationID = cid
	}
	return l
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *Logger {
	return NewLoggerTo(io.Discard)
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// LogWorkspaceOperation logs generator operations. These messages go only to the log file.
func (w *Logger) LogWorkspaceOperation(operation, details string) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "info", "op": operation, "msg": details, "cid": w.correlationID})
		return
	}
	w.logger.Printf("Operation: %s, Details: %s", operation, details)
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	if w.jsonMode {
		w.encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}

func (w *Logger) encode(record map[string]any) {
	_ = json.NewEncoder(w.logger.Writer()).Encode(record)
}
