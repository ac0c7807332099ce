package marketing

import (
	"strings"
	"testing"
)

func TestBriefingPrompt(t *testing.T) {
	b := Briefing{
		Product:   "Botijão 13kg",
		Promotion: "R$ 10 de desconto na troca",
		Audience:  "clientes do bairro Centro",
		Tone:      "informal",
	}

	prompt := b.prompt()

	for _, want := range []string{
		"Botijão 13kg",
		"Oferta: R$ 10 de desconto na troca",
		"Público: clientes do bairro Centro",
		"Tom: informal",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt sem %q:\n%s", want, prompt)
		}
	}
}

func TestBriefingPromptOmitsEmptyFields(t *testing.T) {
	prompt := Briefing{Product: "Galão 20L"}.prompt()

	if strings.Contains(prompt, "Oferta:") || strings.Contains(prompt, "Público:") || strings.Contains(prompt, "Tom:") {
		t.Fatalf("prompt não deve listar campos vazios:\n%s", prompt)
	}
	if prompt != "Escreva uma mensagem promocional sobre: Galão 20L" {
		t.Fatalf("prompt = %q", prompt)
	}
}

func TestNewComposerRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := NewComposer(nil, nil); err == nil {
		t.Fatalf("esperava erro sem ANTHROPIC_API_KEY")
	}
}
