package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	opened  bool
)

// Log writes a message to the debug log with a timestamp. A no-op unless
// COLLAPSE_DEBUG names a writable file path.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		opened = true
		openLocked()
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// openLocked opens the log file named by COLLAPSE_DEBUG. Caller must hold mu.
func openLocked() {
	path := os.Getenv("COLLAPSE_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", fmt.Errorf("failed to open debug log: %w", err))
		return
	}
	logFile = f
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
