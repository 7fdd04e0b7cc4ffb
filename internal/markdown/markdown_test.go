package markdown

import (
	"strings"
	"testing"
)

func TestRender_EmptyInput(t *testing.T) {
	if out := Render(80, 0, nil); out != nil {
		t.Errorf("Render(nil) = %q, want nil", out)
	}
	if out := Render(80, 0, []byte("   \n\n  ")); out != nil {
		t.Errorf("Render(whitespace) = %q, want nil", out)
	}
}

func TestRender_IndentsEveryLine(t *testing.T) {
	out := Render(40, 4, []byte("first\n\nsecond\n"))
	if out == nil {
		t.Fatal("expected rendered output")
	}
	for i, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("line %d not indented: %q", i, line)
		}
	}
}

func TestRender_NormalizesCRLF(t *testing.T) {
	out := Render(80, 0, []byte("one\r\ntwo\r"))
	if strings.Contains(string(out), "\r") {
		t.Errorf("carriage returns survived rendering: %q", out)
	}
}

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, "hello")
	if out != "hello" {
		t.Fatalf("expected fallback to plain text, got %q", out)
	}
}
