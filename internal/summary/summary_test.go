package summary_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/tree"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Info(format string, args ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	log := &captureLogger{}
	summary.DisplayResults(log, tree.Stats{Directories: 2, Files: 5}, 42*time.Millisecond, false)

	joined := strings.Join(log.lines, "\n")
	if !strings.Contains(joined, "2 directories") || !strings.Contains(joined, "5 files") {
		t.Errorf("counts missing from summary: %q", joined)
	}
}

func TestDisplayResults_Quiet(t *testing.T) {
	log := &captureLogger{}
	summary.DisplayResults(log, tree.Stats{}, time.Second, true)
	if len(log.lines) != 0 {
		t.Errorf("quiet mode should suppress the summary, got %v", log.lines)
	}
}

func TestDisplayIgnoredItems_SortedWithTags(t *testing.T) {
	log := &captureLogger{}
	var buf bytes.Buffer
	items := []tree.IgnoredItem{
		{Path: "zz.log", IsDir: false},
		{Path: "build", IsDir: true},
	}

	summary.DisplayIgnoredItems(log, items, &buf, false)

	out := buf.String()
	buildIdx := strings.Index(out, "build")
	logIdx := strings.Index(out, "zz.log")
	if buildIdx == -1 || logIdx == -1 || buildIdx > logIdx {
		t.Errorf("items should print sorted by path:\n%s", out)
	}
	if !strings.Contains(out, "DIR ") || !strings.Contains(out, "FILE") {
		t.Errorf("expected DIR/FILE tags:\n%s", out)
	}
}

func TestDisplayIgnoredItems_QuietStillListsItems(t *testing.T) {
	log := &captureLogger{}
	var buf bytes.Buffer

	summary.DisplayIgnoredItems(log, []tree.IgnoredItem{{Path: "a"}}, &buf, true)

	if len(log.lines) != 0 {
		t.Errorf("quiet mode should suppress the header lines, got %v", log.lines)
	}
	if !strings.Contains(buf.String(), "a") {
		t.Errorf("the item listing itself is explicitly requested and still prints")
	}
}
