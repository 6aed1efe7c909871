package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	LogFileName = "skycast.log"
)

// rotatingFile is an io.Writer that appends to a log file and rotates it
// once it grows past maxLogSize (skycast.log -> skycast.log.1 -> ... -> .3).
type rotatingFile struct {
	mu   sync.Mutex
	dir  string
	file *os.File
	size int64
}

var (
	activeLog   *rotatingFile
	activeLogMu sync.Mutex
)

// InitLogger routes the standard logger to stderr and to a rotating log file
// inside dir. It should be called once during application startup.
func InitLogger(dir string) (string, error) {
	activeLogMu.Lock()
	defer activeLogMu.Unlock()

	rf := &rotatingFile{dir: dir}
	if err := rf.open(); err != nil {
		return "", err
	}

	activeLog = rf
	log.SetOutput(io.MultiWriter(os.Stderr, rf))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	path := rf.path()
	log.Printf("[Config] === Logger initialized: %s (max %d MB, %d backups) ===",
		path, maxLogSize/(1024*1024), maxLogFiles)
	return path, nil
}

// CloseLogger restores stderr logging and closes the log file.
func CloseLogger() {
	activeLogMu.Lock()
	defer activeLogMu.Unlock()

	if activeLog == nil {
		return
	}
	log.Println("[Config] === Logger closing ===")
	log.SetOutput(os.Stderr)
	activeLog.close()
	activeLog = nil
}

// LogFilePath returns the path of the active log file, or "" if file logging is off.
func LogFilePath() string {
	activeLogMu.Lock()
	defer activeLogMu.Unlock()

	if activeLog == nil {
		return ""
	}
	return activeLog.path()
}

func (r *rotatingFile) path() string {
	return filepath.Join(r.dir, LogFileName)
}

func (r *rotatingFile) open() error {
	logPath := r.path()

	// Check if we need to rotate before opening
	if info, err := os.Stat(logPath); err == nil {
		r.size = info.Size()
		if r.size >= maxLogSize {
			if err := r.rotate(); err != nil {
				return fmt.Errorf("failed to rotate logs: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return len(p), nil
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, err
	}

	if r.size >= maxLogSize {
		if err := r.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to rotate logs: %v\n", err)
			return n, nil
		}
		file, err := os.OpenFile(r.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to reopen log after rotation: %v\n", err)
			return n, nil
		}
		r.file = file
	}
	return n, nil
}

// rotate performs log rotation. The caller holds r.mu (or owns r exclusively).
func (r *rotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}

	basePath := r.path()

	// Remove oldest backup (skycast.log.3)
	os.Remove(fmt.Sprintf("%s.%d", basePath, maxLogFiles))

	for i := maxLogFiles - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", basePath, i), fmt.Sprintf("%s.%d", basePath, i+1))
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	r.size = 0
	return nil
}

func (r *rotatingFile) close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file != nil {
		r.file.Close()
		r.file = nil
	}
}
