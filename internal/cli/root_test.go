package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	want := []string{"plot", "signals", "palette", "config", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	for _, path := range [][]string{
		{"signals", "stable-rank"},
		{"signals", "participation"},
		{"signals", "normalize"},
		{"signals", "smooth"},
		{"signals", "cca"},
		{"palette", "cmap"},
		{"palette", "browse"},
		{"cache", "clear"},
		{"config", "init"},
	} {
		if cmd, _, err := root.Find(path); err != nil || cmd.Name() != path[1] {
			t.Errorf("subcommand %v not registered", path)
		}
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	root := c.RootCommand()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root.SetArgs([]string{"config", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config path: %v", err)
	}

	sub, _, _ := root.Find([]string{"config", "path"})
	if loggerFromContext(sub.Context()) != c.Logger {
		t.Error("subcommand context should carry the CLI logger")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug output at info level")
	}
	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("shown")
	if buf.Len() == 0 {
		t.Error("debug output missing after SetLogLevel")
	}
}
