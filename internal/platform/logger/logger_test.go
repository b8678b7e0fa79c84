package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileAppendsMessageLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")

	for i := 0; i < 2; i++ {
		log, err := NewFile(path)
		if err != nil {
			t.Fatalf("NewFile: %v", err)
		}
		log.Info("Reminder: Order 1 for a@example.com")
		log.Sync()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 appended lines, got %d: %q", len(lines), raw)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " - Reminder: Order 1 for a@example.com") {
			t.Fatalf("unexpected line format: %q", line)
		}
	}
}

func TestNewPlainFileWritesBareMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat.log")
	log, err := NewPlainFile(path)
	if err != nil {
		t.Fatalf("NewPlainFile: %v", err)
	}
	log.Info("01/02/2026-10:00:00 CRM is alive")
	log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := string(raw); got != "01/02/2026-10:00:00 CRM is alive\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestNewFileRequiresPath(t *testing.T) {
	if _, err := NewFile("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSanitizeValue(t *testing.T) {
	if got := sanitizeValue("db_password", "hunter2"); got != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", got)
	}
	got, ok := sanitizeValue("email", "a@example.com").(string)
	if !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("email not hashed: %v", got)
	}
	if again := sanitizeValue("email", "a@example.com"); again != got {
		t.Fatalf("hash not stable: %v vs %v", again, got)
	}
	if got := sanitizeValue("customer_id", "abc"); got != "abc" {
		t.Fatalf("unexpected change for plain key: %v", got)
	}
}
