// Package audit appends one YAML entry per dispatched game action, so play
// sessions can be reconstructed later.
package audit

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is one recorded action call. Appended entries form a growing YAML
// list in the log file.
type Entry struct {
	Timestamp      string `yaml:"timestamp"`
	UserName       string `yaml:"user_name"`
	FunctionCalled string `yaml:"function_called"`
}

// Logger is a mutex-guarded appender for the action call log. Audit problems
// never fail the action itself; they are logged and swallowed.
type Logger struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	now    func() time.Time
}

// New creates a logger writing to <dataDir>/logs/function_calls.yaml.
func New(dataDir string, logger *log.Logger) *Logger {
	if logger == nil {
		logger = log.Default()
	}
	dir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Printf(`{"level":"error","msg":"audit_dir_create_failed","error":%q}`, err.Error())
	}
	return &Logger{
		path:   filepath.Join(dir, "function_calls.yaml"),
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the log file location.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Record appends one call entry. A nil logger records nothing.
func (l *Logger) Record(username, function string) {
	if l == nil {
		return
	}
	if username == "" {
		username = "unknown"
	}
	entry := Entry{
		Timestamp:      l.now().Format(time.RFC3339),
		UserName:       username,
		FunctionCalled: function,
	}
	b, err := yaml.Marshal([]Entry{entry})
	if err != nil {
		l.logger.Printf(`{"level":"error","msg":"audit_marshal_failed","error":%q}`, err.Error())
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.logger.Printf(`{"level":"error","msg":"audit_open_failed","error":%q}`, err.Error())
		return
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		l.logger.Printf(`{"level":"error","msg":"audit_write_failed","error":%q}`, err.Error())
	}
}

// Read parses the whole log back. It exists for the ops tooling and tests.
func (l *Logger) Read() ([]Entry, error) {
	if l == nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	return entries, nil
}
