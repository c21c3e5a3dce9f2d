package view

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/layout"
)

func TestZoomActions(t *testing.T) {
	svc, err := app.New("", nil)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	cases := []struct {
		action string
		want   float64
	}{
		{"in", 1.25},
		{"in", 1.5},
		{"out", 1.25},
		{"3", 3},
		{"10x", layout.MaxZoom},
		{"reset", layout.DefaultZoom},
		{"", layout.DefaultZoom},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		z := Zoom{Service: svc, Action: tc.action, Out: &buf}
		if err := z.Do(context.Background()); err != nil {
			t.Fatalf("%q: %v", tc.action, err)
		}
		if got := svc.View.Zoom(); got != tc.want {
			t.Fatalf("%q: expected zoom %v, got %v", tc.action, tc.want, got)
		}
	}

	if err := (&Zoom{Service: svc, Action: "wide"}).Do(context.Background()); err == nil {
		t.Fatalf("expected error for bad action")
	}
}

func TestCategoriesSetAndClear(t *testing.T) {
	svc, _ := app.New("", nil)
	var buf bytes.Buffer

	c := Categories{Service: svc, Names: []string{"qa", "Design", "QA"}, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := svc.View.Categories()
	if len(got) != 2 || got[0] != category.QA || got[1] != category.Design {
		t.Fatalf("unexpected filter %v", got)
	}

	if err := (&Categories{Service: svc, Names: []string{"Sales"}, Out: &buf}).Do(context.Background()); err == nil {
		t.Fatalf("expected unknown category error")
	}

	if err := (&Categories{Service: svc, Clear: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(svc.View.Categories()) != 0 {
		t.Fatalf("expected cleared filter")
	}
}

func TestLegendJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Legend{JSON: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"#60A5FA"`)) {
		t.Fatalf("unexpected legend %s", buf.String())
	}
}
