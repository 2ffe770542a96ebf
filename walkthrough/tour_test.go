package walkthrough

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunPrintsAllSections(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var out bytes.Buffer
	if err := Run(&out, DefaultConfig()); err != nil {
		t.Fatalf("walkthrough failed: %v", err)
	}
	t.Logf("walkthrough output:\n%s", out.String())
	for _, line := range []string{
		"Hello, World!",
		"The third element of v is 3!",
		"There is no element at index 100 in v",
		"After releasing first, v has grown to [1 2 3 4 5 6]",
		"150\n82\n107\n",
		"Cell 2 is a text 'blue'",
		"Cell 3 is a float 10.12",
		"s1 is now 'initial data'",
		"s1 is now 'foobar'",
		"s2 is now 'bar'",
		"s5 is now 'Hello, world!'",
		"s5 has 13 bytes, s4 is still 'world!'",
		"s is now 'tic-tac-toe'",
		"The first four bytes of 'hello' are encoded as 'Зд'",
		"Char 6 is े",
		"Byte 18 is 135",
		"Blue has been overwritten, previous score was 10",
		"Blue: 25\nRed: 50\nYellow: 50\n",
		"Favorite color is Blue",
		"\"world\" occurs 2 times",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("expected output to contain %q", line)
		}
	}
	if strings.Contains(out.String(), "Byte 19 is") {
		t.Errorf("expected exactly 18 bytes for 'नमस्ते'")
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected no color escapes in default config")
	}
}

func TestRunUnderlinesHeadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	var out bytes.Buffer
	if err := Run(&out, nil); err != nil {
		t.Fatalf("walkthrough failed: %v", err)
	}
	if !strings.Contains(out.String(), "\nMaps\n====\n") {
		t.Errorf("expected underlined 'Maps' heading")
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestRunReportsWriteErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "collections")
	defer teardown()

	if err := Run(failingWriter{}, DefaultConfig()); !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
}
