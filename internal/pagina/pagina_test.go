package pagina

import "testing"

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestRecortar(t *testing.T) {
	tests := []struct {
		name         string
		n            int
		tamanho      int
		numero       int
		querLen      int
		querNumero   int
		querTotal    int
		querPrimeiro int // 0 = página vazia
	}{
		{"20 itens, página 1 de 8", 20, 8, 1, 8, 1, 3, 1},
		{"20 itens, página 2 de 8", 20, 8, 2, 8, 2, 3, 9},
		{"20 itens, última página parcial", 20, 8, 3, 4, 3, 3, 17},
		{"número além do fim é grampeado", 20, 8, 99, 4, 3, 3, 17},
		{"número abaixo de 1 é grampeado", 20, 8, 0, 8, 1, 3, 1},
		{"coleção menor que a página", 3, 8, 1, 3, 1, 1, 1},
		{"divisão exata", 16, 8, 2, 8, 2, 2, 9},
		{"coleção vazia tem uma página vazia", 0, 8, 5, 0, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Recortar(seq(tt.n), tt.tamanho, tt.numero)
			if len(j.Visiveis) != tt.querLen {
				t.Errorf("len(Visiveis) = %d, quer %d", len(j.Visiveis), tt.querLen)
			}
			if j.Numero != tt.querNumero {
				t.Errorf("Numero = %d, quer %d", j.Numero, tt.querNumero)
			}
			if j.TotalPaginas != tt.querTotal {
				t.Errorf("TotalPaginas = %d, quer %d", j.TotalPaginas, tt.querTotal)
			}
			if tt.querPrimeiro > 0 && j.Visiveis[0] != tt.querPrimeiro {
				t.Errorf("primeiro item = %d, quer %d", j.Visiveis[0], tt.querPrimeiro)
			}
		})
	}
}

func TestRecortarTotalPaginas(t *testing.T) {
	// TotalPaginas == teto(N/P) para coleções não vazias.
	for _, tt := range []struct{ n, p, quer int }{
		{1, 8, 1}, {8, 8, 1}, {9, 8, 2}, {20, 8, 3}, {24, 8, 3}, {25, 8, 4},
	} {
		if j := Recortar(seq(tt.n), tt.p, 1); j.TotalPaginas != tt.quer {
			t.Errorf("Recortar(%d itens, %d) TotalPaginas = %d, quer %d",
				tt.n, tt.p, j.TotalPaginas, tt.quer)
		}
	}
}

func TestNavegacaoNasBordas(t *testing.T) {
	// "Próxima" na última página e "Anterior" na primeira não mudam nada.
	if got := Proxima(3, 3); got != 3 {
		t.Errorf("Proxima(3, 3) = %d, quer 3", got)
	}
	if got := Anterior(1); got != 1 {
		t.Errorf("Anterior(1) = %d, quer 1", got)
	}
	if got := Proxima(1, 3); got != 2 {
		t.Errorf("Proxima(1, 3) = %d, quer 2", got)
	}
	if got := Anterior(3); got != 2 {
		t.Errorf("Anterior(3) = %d, quer 2", got)
	}
}

func TestReclampAposEncolher(t *testing.T) {
	// Estava na página 3; a coleção encolheu para uma página só.
	j := Recortar(seq(5), 8, 3)
	if j.Numero != 1 || j.TotalPaginas != 1 || len(j.Visiveis) != 5 {
		t.Errorf("re-clamp falhou: %+v", j)
	}
}
