package postprocessors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
	"github.com/custodia-labs/wiki-push/internal/postprocessors/minify"
	"github.com/custodia-labs/wiki-push/internal/postprocessors/tableborder"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if r.Has("mock") {
		t.Error("expected empty registry")
	}

	r.Register("mock", func(map[string]any) (driven.HTMLProcessor, error) {
		return &mockProcessor{name: "mock"}, nil
	})

	if !r.Has("mock") {
		t.Error("expected mock to be registered")
	}
}

func TestRegistry_Build_Success(t *testing.T) {
	r := NewRegistry()
	var got map[string]any
	r.Register("mock", func(cfg map[string]any) (driven.HTMLProcessor, error) {
		got = cfg
		return &mockProcessor{name: "mock"}, nil
	})

	p, err := r.Build("mock", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "mock" {
		t.Errorf("expected mock processor, got %s", p.Name())
	}
	if got["k"] != "v" {
		t.Error("expected config to reach the builder")
	}
}

func TestRegistry_Build_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("nope", nil)
	if err == nil || err.Error() != "unknown processor: nope" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegistry_Build_BuilderError(t *testing.T) {
	r := NewRegistry()
	bad := errors.New("bad config")
	r.Register("mock", func(map[string]any) (driven.HTMLProcessor, error) {
		return nil, bad
	})

	if _, err := r.Build("mock", nil); !errors.Is(err, bad) {
		t.Errorf("expected builder error, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	names := r.Names()
	if len(names) != 2 || names[0] != minify.Name || names[1] != tableborder.Name {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestRegistry_BuildPipeline(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	p, err := r.BuildPipeline(DefaultNames, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := p.Process(context.Background(), "<table><tr><td>1</td></tr></table>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, tableborder.DefaultTag) {
		t.Errorf("expected bordered table, got %q", out)
	}

	if _, err := r.BuildPipeline([]string{"tableborder", "nope"}, nil); err == nil {
		t.Error("expected unknown processor to fail the pipeline")
	}
}

func TestRegisterDefaults_Config(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	p, err := r.Build(tableborder.Name, map[string]any{"tag": `<table border="2">`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ := p.Process(context.Background(), "<table></table>")
	if out != `<table border="2"></table>` {
		t.Errorf("expected custom tag, got %q", out)
	}

	if _, err := r.Build(minify.Name, map[string]any{"keep_whitespace": false}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
