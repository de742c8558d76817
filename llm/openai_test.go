package llm

import (
	"fmt"
	"testing"
)

func TestCostWithoutUsage(t *testing.T) {
	model := &OpenAIModel{}

	cost, ok := model.Cost()
	if ok {
		t.Error("Expected no usage data on a fresh client")
	}
	if cost != 0 {
		t.Errorf("Expected zero cost without usage, got %f", cost)
	}
}

func TestCostFromTokenUsage(t *testing.T) {
	model := &OpenAIModel{
		promptTokens:     1_000_000,
		completionTokens: 500_000,
		usageSeen:        true,
	}

	cost, ok := model.Cost()
	if !ok {
		t.Fatal("Expected usage data to be reported")
	}

	// 1M prompt tokens at $1.10/M plus 0.5M completion tokens at $4.40/M.
	if got := fmt.Sprintf("%.2f", cost); got != "3.30" {
		t.Errorf("Expected cost to display as 3.30, got %s", got)
	}
}

func TestNewOpenAIRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAI(""); err == nil {
		t.Error("Expected an error for an empty API key")
	}
}

func TestNewOpenAIAppliesOptions(t *testing.T) {
	model, err := NewOpenAI("test-key",
		WithModel("gpt-4.1-mini"),
		WithMaxTokens(2000),
		WithAPITimeout(10),
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if model.modelName != "gpt-4.1-mini" {
		t.Errorf("Expected model 'gpt-4.1-mini', got %s", model.modelName)
	}
	if model.maxTokens != 2000 {
		t.Errorf("Expected max tokens 2000, got %d", model.maxTokens)
	}
	if model.apiTimeout != 10 {
		t.Errorf("Expected timeout 10, got %d", model.apiTimeout)
	}
}
