package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRequiresToken(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), RuntimeConfig{AnnounceChannelID: "channel-1"})
	if err == nil || !strings.Contains(err.Error(), "bot token") {
		t.Fatalf("expected bot token error, got %v", err)
	}
}

func TestRunRequiresAnnounceChannel(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), RuntimeConfig{Token: "token"})
	if err == nil || !strings.Contains(err.Error(), "announcement channel") {
		t.Fatalf("expected announcement channel error, got %v", err)
	}
}

func TestRunRejectsUnwritableJournalPath(t *testing.T) {
	t.Parallel()

	// A regular file where the journal directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}

	err := Run(context.Background(), RuntimeConfig{
		Token:             "token",
		AnnounceChannelID: "channel-1",
		DBPath:            filepath.Join(blocker, "journal.db"),
	})
	if err == nil {
		t.Fatal("expected journal open error")
	}
}
