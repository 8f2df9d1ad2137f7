package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if s := String(); !strings.HasPrefix(s, "version: v9.9.9\n") {
		t.Errorf("String() = %q", s)
	}
	if tpl := Template(); !strings.Contains(tpl, "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", tpl)
	}
}
