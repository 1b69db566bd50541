package bot

import (
	"strings"
	"testing"

	"github.com/Luum3/doceria-bot/internal/domain/estoque"
)

func TestMoeda(t *testing.T) {
	tests := []struct {
		v    float64
		quer string
	}{
		{0, "R$ 0,00"},
		{5.5, "R$ 5,50"},
		{55, "R$ 55,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-9.9, "-R$ 9,90"},
		{0.055, "R$ 0,06"},
	}
	for _, tt := range tests {
		if got := moeda(tt.v); got != tt.quer {
			t.Errorf("moeda(%v) = %q, quer %q", tt.v, got, tt.quer)
		}
	}
}

func TestParseValor(t *testing.T) {
	tests := []struct {
		in      string
		quer    float64
		wantErr bool
	}{
		{"5,50", 5.50, false},
		{"5.50", 5.50, false},
		{" 12 ", 12, false},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseValor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.quer {
			t.Errorf("parseValor(%q) = %v, quer %v", tt.in, got, tt.quer)
		}
	}
}

func TestTextoEstoque(t *testing.T) {
	if got := textoEstoque(nil); got != "Estoque vazio." {
		t.Errorf("estoque vazio: %q", got)
	}

	got := textoEstoque([]estoque.Item{
		{Categoria: "Tradicional", Quantidade: 12},
		{Categoria: "Nozes", Quantidade: 5},
	})
	for _, quer := range []string{"Tradicional — 12 unidades", "Nozes — 5 unidades", "Total Geral: 17 unidades"} {
		if !strings.Contains(got, quer) {
			t.Errorf("textoEstoque sem %q:\n%s", quer, got)
		}
	}
}
