package colorlog

import (
	"errors"
	"sync"
	"testing"

	"github.com/user/colorlog/pkg/colorcode"
	"github.com/user/colorlog/pkg/mocks"
	"github.com/user/colorlog/pkg/ports"
)

func TestLogger_PrefixComposition(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("&9[Tag]&r ", sink)

	log.Log(ports.LevelInfo, "&ahi")

	entries := sink.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one sink call, got %d", len(entries))
	}
	want := colorcode.Translate("&9[Tag]&r ") + colorcode.Translate("&ahi")
	if entries[0].Msg != want {
		t.Errorf("got %q, want %q", entries[0].Msg, want)
	}
	if entries[0].Level != ports.LevelInfo {
		t.Errorf("expected info level, got %v", entries[0].Level)
	}
	if entries[0].Err != nil {
		t.Errorf("expected no error payload, got %v", entries[0].Err)
	}
}

func TestLogger_EmptyPrefix(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("", sink)

	log.Log(ports.LevelWarn, "plain")

	if got := sink.Entries()[0].Msg; got != "plain" {
		t.Errorf("expected untouched message, got %q", got)
	}
}

func TestLogger_LogError(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("&c[X] ", sink)
	cause := errors.New("boom")

	log.LogError(ports.LevelError, "&lfailed", cause)

	entries := sink.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one sink call, got %d", len(entries))
	}
	if entries[0].Err != cause {
		t.Errorf("expected error payload to be forwarded, got %v", entries[0].Err)
	}
	want := colorcode.Translate("&c[X] ") + colorcode.Translate("&lfailed")
	if entries[0].Msg != want {
		t.Errorf("got %q, want %q", entries[0].Msg, want)
	}
}

func TestLogger_SetPrefix(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("&a[old] ", sink)

	log.Info("first")
	log.SetPrefix("&c[new] ")
	log.Info("second")

	entries := sink.Entries()
	if entries[0].Msg != colorcode.Translate("&a[old] ")+"first" {
		t.Errorf("first message changed retroactively: %q", entries[0].Msg)
	}
	if entries[1].Msg != colorcode.Translate("&c[new] ")+"second" {
		t.Errorf("second message did not use new prefix: %q", entries[1].Msg)
	}
	if log.Prefix() != colorcode.Translate("&c[new] ") {
		t.Errorf("Prefix() = %q", log.Prefix())
	}
}

func TestLogger_SetSink(t *testing.T) {
	first := mocks.NewSink()
	second := mocks.NewSink()
	log := NewWithSink("", first)

	log.Info("one")
	log.SetSink(second)
	log.Info("two")

	if len(first.Entries()) != 1 || len(second.Entries()) != 1 {
		t.Errorf("expected one call per sink, got %d and %d", len(first.Entries()), len(second.Entries()))
	}
	if log.Sink() != second {
		t.Error("Sink() did not return the replacement")
	}
}

func TestLogger_NilSinkUsesDefault(t *testing.T) {
	log := NewWithSink("", nil)
	if log.Sink() == nil {
		t.Fatal("expected a default sink")
	}

	log.SetSink(nil)
	if log.Sink() == nil {
		t.Fatal("expected SetSink(nil) to fall back to the default sink")
	}
}

func TestLogger_LevelHelpers(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("", sink)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	want := []ports.LogLevel{ports.LevelDebug, ports.LevelInfo, ports.LevelWarn, ports.LevelError}
	entries := sink.Entries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, level := range want {
		if entries[i].Level != level {
			t.Errorf("entry %d: got %v, want %v", i, entries[i].Level, level)
		}
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	sink := mocks.NewSink()
	log := NewWithSink("&a> ", sink)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			log.Info("&cmsg")
		}()
		go func() {
			defer wg.Done()
			log.SetPrefix("&b> ")
		}()
	}
	wg.Wait()

	if len(sink.Entries()) != 8 {
		t.Errorf("expected 8 entries, got %d", len(sink.Entries()))
	}
}
