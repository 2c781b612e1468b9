package anthropic

import (
	"testing"

	"github.com/roboco-io/galaxymsbt/internal/llm"
)

var _ llm.Provider = (*Provider)(nil)

func TestNew(t *testing.T) {
	p := New(Config{APIKey: "key"})

	if p.Name() != "anthropic" {
		t.Errorf("expected name 'anthropic', got %s", p.Name())
	}
	if p.cfg.Model != DefaultModel {
		t.Errorf("expected default model %s, got %s", DefaultModel, p.cfg.Model)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	if err := New(Config{}).Validate(); err == nil {
		t.Error("expected error for missing API key")
	}
}
