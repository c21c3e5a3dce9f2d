package show

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
)

func init() {
	color.NoColor = true
}

func defaultService(t *testing.T) *app.Service {
	t.Helper()
	svc, err := app.New("", nil)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return svc
}

func TestLayoutJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Layout{Service: defaultService(t), JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		LaneCount  int `json:"laneCount"`
		Placements []struct {
			ID int `json:"id"`
		} `json:"placements"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got.LaneCount != 6 || len(got.Placements) != 16 {
		t.Fatalf("unexpected layout %+v", got)
	}
}

func TestLanesPretty(t *testing.T) {
	var buf bytes.Buffer
	l := Lanes{Service: defaultService(t), Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "6 lanes") || !strings.Contains(buf.String(), "Launch day") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestWindowJSON(t *testing.T) {
	var buf bytes.Buffer
	w := Window{Service: defaultService(t), JSON: true, Out: &buf}
	if err := w.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), `"totalDays": 169`) {
		t.Fatalf("unexpected window:\n%s", buf.String())
	}
}

func TestNoService(t *testing.T) {
	if err := (&Layout{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without service")
	}
}
