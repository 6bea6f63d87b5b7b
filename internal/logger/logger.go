package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const maxBufferSize = 1000

const (
	TagInfo    = "[INFO]"
	TagWarn    = "[WARN]"
	TagError   = "[ERROR]"
	TagRead    = "[STORAGE_READ]"
	TagWrite   = "[STORAGE_WRITE]"
	TagRequest = "[HTTP]"
)

var (
	instance *Logger
	once     sync.Once
)

type LogEntry struct {
	Timestamp time.Time
	Message   string
}

type Logger struct {
	file    *os.File
	logger  *log.Logger
	mu      sync.Mutex
	buffer  []LogEntry
	enabled bool
}

// Init opens logPath for appending. When enabled is false, or the file cannot
// be opened, entries are only kept in the in-memory buffer.
func Init(logPath string, enabled bool) error {
	var initErr error
	once.Do(func() {
		if !enabled || logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			initErr = fmt.Errorf("failed to create log directory: %w", err)
			return
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			initErr = fmt.Errorf("failed to open log file: %w", err)
			return
		}

		instance = &Logger{
			file:    file,
			logger:  log.New(file, "", log.LstdFlags),
			buffer:  make([]LogEntry, 0, maxBufferSize),
			enabled: true,
		}
	})

	EnsureInit()
	return initErr
}

func EnsureInit() {
	if instance == nil {
		instance = &Logger{
			buffer:  make([]LogEntry, 0, maxBufferSize),
			enabled: false,
		}
	}
}

func Close() error {
	if instance != nil && instance.file != nil {
		return instance.file.Close()
	}
	return nil
}

func write(message string) {
	EnsureInit()
	instance.mu.Lock()
	defer instance.mu.Unlock()

	if len(instance.buffer) >= maxBufferSize {
		instance.buffer = instance.buffer[1:]
	}
	instance.buffer = append(instance.buffer, LogEntry{
		Timestamp: time.Now(),
		Message:   message,
	})

	if instance.enabled && instance.logger != nil {
		instance.logger.Println(message)
	}
}

func GetLogs() []LogEntry {
	EnsureInit()
	instance.mu.Lock()
	defer instance.mu.Unlock()

	logs := make([]LogEntry, len(instance.buffer))
	copy(logs, instance.buffer)
	return logs
}

func LogStorageRead(key string) {
	write(fmt.Sprintf("%s %s", TagRead, key))
}

func LogStorageWrite(key string) {
	write(fmt.Sprintf("%s %s", TagWrite, key))
}

func LogRequest(id, method, path string) {
	write(fmt.Sprintf("%s %s %s %s", TagRequest, id, method, path))
}

func LogError(operation, subject string, err error) {
	write(fmt.Sprintf("%s %s: %s - %v", TagError, operation, subject, err))
}

func LogWarning(message string, args ...interface{}) {
	write(fmt.Sprintf(TagWarn+" "+message, args...))
}

func Log(message string, args ...interface{}) {
	write(fmt.Sprintf(TagInfo+" "+message, args...))
}
