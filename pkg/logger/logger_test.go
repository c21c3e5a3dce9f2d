package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiscardBeforeSetup(t *testing.T) {
	if L() == nil {
		t.Fatalf("expected a logger before setup")
	}
	L().Info("dropped")
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Writer: &buf})
	defer restore()

	L().Debug("hidden")
	L().Info("layout.computed", "lanes", 6)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged without debug: %q", out)
	}
	if !strings.Contains(out, "layout.computed") || !strings.Contains(out, "lanes=6") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSetupJSONDebug(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Writer: &buf, Debug: true, JSON: true})
	L().Debug("seed.reloaded", "items", 16)
	restore()
	L().Info("after restore")

	out := buf.String()
	if !strings.Contains(out, `"msg":"seed.reloaded"`) || !strings.Contains(out, `"items":16`) {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "after restore") {
		t.Fatalf("logged after restore: %q", out)
	}
}
