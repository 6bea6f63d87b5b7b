package logger

import (
	"fmt"
	"strings"
	"testing"
)

func TestLogAppendsToBuffer(t *testing.T) {
	EnsureInit()

	Log("catalog loaded with %d repositories", 3)

	logs := GetLogs()
	if len(logs) == 0 {
		t.Fatal("expected at least one log entry")
	}

	last := logs[len(logs)-1]
	if !strings.HasPrefix(last.Message, TagInfo) {
		t.Errorf("expected %s prefix, got %q", TagInfo, last.Message)
	}
	if !strings.Contains(last.Message, "3 repositories") {
		t.Errorf("expected formatted message, got %q", last.Message)
	}
}

func TestLogErrorFormat(t *testing.T) {
	EnsureInit()

	LogError("LOOKUP", "facebook/react", fmt.Errorf("boom"))

	logs := GetLogs()
	last := logs[len(logs)-1].Message
	if last != "[ERROR] LOOKUP: facebook/react - boom" {
		t.Errorf("unexpected error entry %q", last)
	}
}

func TestBufferIsBounded(t *testing.T) {
	EnsureInit()

	for i := 0; i < maxBufferSize+50; i++ {
		LogStorageWrite(fmt.Sprintf("key-%d", i))
	}

	logs := GetLogs()
	if len(logs) != maxBufferSize {
		t.Fatalf("expected %d entries, got %d", maxBufferSize, len(logs))
	}

	want := fmt.Sprintf("%s key-%d", TagWrite, maxBufferSize+49)
	if logs[len(logs)-1].Message != want {
		t.Errorf("expected newest entry %q, got %q", want, logs[len(logs)-1].Message)
	}
}

func TestGetLogsReturnsCopy(t *testing.T) {
	EnsureInit()
	Log("original")

	logs := GetLogs()
	logs[len(logs)-1].Message = "mutated"

	again := GetLogs()
	if again[len(again)-1].Message == "mutated" {
		t.Error("GetLogs should return a copy of the buffer")
	}
}
