package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestDescribeOutput(t *testing.T) {
	cmd := newDescribeCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runDescribe(cmd, "banana"); err != nil {
		t.Fatalf("runDescribe() error: %v", err)
	}

	var out descriptor
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Input != "banana" {
		t.Errorf("input = %q, want %q", out.Input, "banana")
	}
	if out.Digest != "72b302bf297a228a75730123efef7c41" {
		t.Errorf("digest = %q, want %q", out.Digest, "72b302bf297a228a75730123efef7c41")
	}
	if out.Color != "#72b302" {
		t.Errorf("color = %q, want %q", out.Color, "#72b302")
	}
	if out.Squares != len(out.Rects) {
		t.Errorf("squares = %d, want %d", out.Squares, len(out.Rects))
	}
	if len(out.Grid) != len(out.Rects) {
		t.Errorf("grid has %d cells, rects has %d", len(out.Grid), len(out.Rects))
	}
	for _, c := range out.Grid {
		if c.Value%2 != 0 {
			t.Errorf("cell %d has odd value %d", c.Index, c.Value)
		}
	}
}

func TestDescribeDeterministic(t *testing.T) {
	render := func() string {
		cmd := newDescribeCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		if err := runDescribe(cmd, "kiwi"); err != nil {
			t.Fatalf("runDescribe() error: %v", err)
		}
		return buf.String()
	}

	if render() != render() {
		t.Error("same input produced different descriptors")
	}
}
