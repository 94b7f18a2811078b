package mylogger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const startupIDFile = "startup_id.txt"

// generateStartupID generates a deterministic startup ID in the format
// 'startup-001', 'startup-002', etc.
func generateStartupID() (string, error) {
	lastID, err := readLastStartupID()
	if err != nil {
		if os.IsNotExist(err) {
			lastID = 0
		} else {
			return "", err
		}
	}

	nextID := lastID + 1
	startupID := fmt.Sprintf("startup-%03d", nextID)

	if err := writeLastStartupID(nextID); err != nil {
		return "", err
	}

	return startupID, nil
}

func readLastStartupID() (int, error) {
	file, err := os.Open(startupIDFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var lastID int
	_, err = fmt.Fscanf(file, "%d", &lastID)
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

func writeLastStartupID(lastID int) error {
	file, err := os.Create(startupIDFile)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "%d", lastID)
	return err
}

// captureFrames collects stack trace frames
func captureFrames(skip, depth int) []stackFrame {
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var stack []stackFrame
	for {
		frame, more := frames.Next()
		stack = append(stack, stackFrame{
			Func:   filepath.Base(frame.Function),
			Source: filepath.Join(filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)),
			Line:   frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}

type stackFrame struct {
	Func   string `json:"func"`
	Source string `json:"source"`
	Line   int    `json:"line"`
}
