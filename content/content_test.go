package content

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"exc/config"
	"exc/exam"
	"exc/state"
)

func testContext(t *testing.T, defaultSpace string) context.Context {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = &config.Config{}
	env.Cfg.Document.Solutions.DefaultSpace = defaultSpace
	return ctx
}

func TestPrepare(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	t.Run("parses and normalizes", func(t *testing.T) {
		src := `<exam title="Midterm">
			<block class="exam-part" points="3">
				<para>Compute the limit.</para>
				<solution/>
			</block>
		</exam>`

		c, err := Prepare(testContext(t, "2in"), strings.NewReader(src), "midterm.xml", log)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}

		if c.SrcName != "midterm.xml" {
			t.Errorf("SrcName = %q, want %q", c.SrcName, "midterm.xml")
		}
		if _, err := uuid.Parse(c.Exam.ID); err != nil {
			t.Errorf("document ID %q is not a valid UUID: %v", c.Exam.ID, err)
		}

		q := c.Exam.Blocks[0].Container
		if q.ID == "" {
			t.Error("container did not receive an ID")
		}
		if q.Points != "3" {
			t.Errorf("points = %q, want %q", q.Points, "3")
		}
		if space := q.Children[1].Solution.Space; space != "2in" {
			t.Errorf("solution space = %q, want %q", space, "2in")
		}
	})

	t.Run("legacy encoding declaration", func(t *testing.T) {
		// windows-1251 body with a Cyrillic title
		src := append([]byte(`<?xml version="1.0" encoding="windows-1251"?><exam title="`),
			0xDD, 0xEA, 0xE7, 0xE0, 0xEC) // "Экзам"
		src = append(src, []byte(`"/>`)...)

		c, err := Prepare(testContext(t, ""), strings.NewReader(string(src)), "legacy.xml", log)
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		if c.Exam.Title != "Экзам" {
			t.Errorf("Title = %q, want %q", c.Exam.Title, "Экзам")
		}
	})

	t.Run("wrong root element", func(t *testing.T) {
		if _, err := Prepare(testContext(t, ""), strings.NewReader("<quiz/>"), "quiz.xml", log); err == nil {
			t.Error("Expected error for wrong root element")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(testContext(t, ""))
		cancel()
		if _, err := Prepare(ctx, strings.NewReader("<exam/>"), "midterm.xml", log); err == nil {
			t.Error("Expected error for cancelled context")
		}
	})
}

func TestPrepare_RawDocumentRetained(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	c, err := Prepare(testContext(t, ""), strings.NewReader(`<exam><block class="exam-part"/></exam>`), "midterm.xml", log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if exam.Containers(c.Exam.Blocks) != 1 {
		t.Errorf("Containers() = %d, want 1", exam.Containers(c.Exam.Blocks))
	}
	if c.Doc == nil || c.Doc.Root() == nil {
		t.Error("raw document not retained")
	}
}
