package supportform

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-supportform/pkg/controller"
	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/view"
)

func TestStart_DemoSubmission(t *testing.T) {
	doc := view.NewSupportDocument("https://example.test/?demo=1")
	ctrl, err := Start(doc)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	doc.Submit()
	if got := doc.Status(); got.Message != model.MessageSuccess || got.IsError {
		t.Fatalf("unexpected status: %+v", got)
	}
	if ctrl.Result() != controller.OutcomeSuccess {
		t.Fatalf("expected success outcome")
	}
}

func TestStart_MissingForm(t *testing.T) {
	doc := view.NewDocument("/", model.StatusID)
	if _, err := Start(doc); !errors.Is(err, controller.ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got %v", err)
	}
}

func TestRenderPageAndTemplates(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `id="form-message"`) {
		t.Fatalf("expected status element in page")
	}

	if _, err := fs.ReadFile(EmbeddedTemplates(), "support_form.html"); err != nil {
		t.Fatalf("expected embedded template: %v", err)
	}
	if Registry().Len() != 7 {
		t.Fatalf("expected seven fields")
	}
}
