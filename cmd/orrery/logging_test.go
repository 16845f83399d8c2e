package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	flags := log.Flags()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		os.Chdir(wd)
	})
}

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created without -debug")
	}
}

func TestDebugSessionWritesLogFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with -debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Log output must stay off the terminal")
	}
	if log.Flags()&log.Lmicroseconds == 0 {
		t.Error("Expected microsecond timestamps")
	}

	log.Printf("star seed %d", 42)
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "star seed 42") {
		t.Errorf("Log missing message: %q", data)
	}

	// A later run without -debug goes back to discarding
	if g := setupLogging(false); g != nil {
		g.Close()
		t.Fatal("Expected no log file without -debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected discard after debug run, got %v", log.Writer())
	}
	log.Printf("dropped")
	data, _ = os.ReadFile(filepath.Join(logDir, logFileName))
	if strings.Contains(string(data), "dropped") {
		t.Error("Message written after logging was disabled")
	}
}

func TestOversizedLogRotatesWithTimestamp(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := regexp.MustCompile(`^orrery-\d{8}-\d{6}\.log$`)
	var names []string
	for _, e := range entries {
		if e.Name() == logFileName {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) != 1 || !rotated.MatchString(names[0]) {
		t.Fatalf("Expected one orrery-<timestamp>.log, got %v", names)
	}

	info, err := os.Stat(filepath.Join(logDir, names[0]))
	if err != nil {
		t.Fatalf("stat rotated: %v", err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("Rotated file should keep the old contents, size %d", info.Size())
	}
	if info, err := os.Stat(logPath); err != nil || info.Size() != 0 {
		t.Errorf("Fresh log should start empty, err %v", err)
	}
}

func TestLogUnderThresholdAppends(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous session\n"), 0644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	defer f.Close()
	log.Printf("next session")

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("Small log should not rotate, found %d files", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous session\n") || !strings.Contains(string(data), "next session") {
		t.Errorf("Expected appended log, got %q", data)
	}
}
