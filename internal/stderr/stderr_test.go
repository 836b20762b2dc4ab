//go:build !windows

package stderr

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCapture_ForwardsLinesToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	c, err := Start(zap.New(core))
	if err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}

	_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n   \n")
	c.Stop()

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d lines, want 1", len(entries))
	}
	if entries[0].Message != "ALSA lib pcm.c: underrun" {
		t.Errorf("Message = %q", entries[0].Message)
	}
	if entries[0].LoggerName != "stderr" {
		t.Errorf("LoggerName = %q, want stderr", entries[0].LoggerName)
	}
}

func TestCapture_StopIsIdempotent(t *testing.T) {
	c, err := Start(zap.NewNop())
	if err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	c.Stop()
	c.Stop()
}
