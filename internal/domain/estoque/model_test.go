package estoque

import "testing"

func TestTotalGeral(t *testing.T) {
	tests := []struct {
		name  string
		itens []Item
		quer  int
	}{
		{"vazio", nil, 0},
		{"uma categoria", []Item{{Categoria: "Tradicional", Quantidade: 12}}, 12},
		{"várias categorias", []Item{
			{Categoria: "Tradicional", Quantidade: 12},
			{Categoria: "Nozes", Quantidade: 17},
			{Categoria: "Doce de leite", Quantidade: 0},
		}, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalGeral(tt.itens); got != tt.quer {
				t.Errorf("TotalGeral() = %d, quer %d", got, tt.quer)
			}
		})
	}
}
