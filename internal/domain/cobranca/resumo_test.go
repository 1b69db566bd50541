package cobranca

import (
	"testing"
	"time"
)

func dia(s string) DataISO {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return DataISO{t}
}

func TestResumir(t *testing.T) {
	agora := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cs   []Cobranca
		want Resumo
	}{
		{
			name: "colecao vazia devolve resumo zerado",
			cs:   nil,
			want: Resumo{},
		},
		{
			name: "particiona pendentes e vencidas pelo vencimento",
			cs: []Cobranca{
				{Cliente: "Ana", Vencimento: dia("2026-08-20"), Valor: 50},
				{Cliente: "Bia", Vencimento: dia("2026-08-10"), Valor: 30},
				{Cliente: "Caio", Vencimento: dia("2026-09-01"), Valor: 20},
			},
			want: Resumo{
				PendentesQtd:   2,
				PendentesValor: 70,
				VencidasQtd:    1,
				VencidasValor:  30,
				TotalAReceber:  100,
			},
		},
		{
			name: "todas vencidas",
			cs: []Cobranca{
				{Vencimento: dia("2026-01-01"), Valor: 10},
				{Vencimento: dia("2026-02-01"), Valor: 15},
			},
			want: Resumo{
				VencidasQtd:   2,
				VencidasValor: 25,
				TotalAReceber: 25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resumir(tt.cs, agora)
			if got != tt.want {
				t.Errorf("Resumir() = %+v, quer %+v", got, tt.want)
			}
		})
	}
}

func TestResumirInvariantes(t *testing.T) {
	agora := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	cs := []Cobranca{
		{Vencimento: dia("2026-08-01"), Valor: 12.5},
		{Vencimento: dia("2026-08-14"), Valor: 7.25},
		{Vencimento: dia("2026-08-16"), Valor: 100},
		{Vencimento: dia("2026-12-31"), Valor: 0.05},
	}

	r := Resumir(cs, agora)
	if r.PendentesQtd+r.VencidasQtd != len(cs) {
		t.Errorf("quantidades não somam o total: %d + %d != %d",
			r.PendentesQtd, r.VencidasQtd, len(cs))
	}
	if r.PendentesValor+r.VencidasValor != r.TotalAReceber {
		t.Errorf("valores não somam o total a receber: %v + %v != %v",
			r.PendentesValor, r.VencidasValor, r.TotalAReceber)
	}

	// Idempotente: duas chamadas com a mesma entrada, mesmo resultado.
	if r2 := Resumir(cs, agora); r2 != r {
		t.Errorf("Resumir não é idempotente: %+v != %+v", r2, r)
	}
}

func TestVencidaMonotonica(t *testing.T) {
	c := Cobranca{Vencimento: dia("2026-08-15")}

	antes := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	depois := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	if c.Vencida(antes) {
		t.Error("cobrança não deveria estar vencida antes do vencimento")
	}
	if !c.Vencida(depois) {
		t.Error("cobrança deveria estar vencida depois do vencimento")
	}
	// Não vencida em T implica não vencida em qualquer T' anterior.
	maisAntes := antes.AddDate(0, -1, 0)
	if c.Vencida(maisAntes) {
		t.Error("vencimento não é monotônico")
	}
}

func TestFiltrarPorCliente(t *testing.T) {
	cs := []Cobranca{
		{Cliente: "Maria Silva"},
		{Cliente: "João Souza"},
		{Cliente: "maria oliveira"},
	}

	tests := []struct {
		termo string
		quer  int
	}{
		{"", 3},
		{"maria", 2},
		{"MARIA", 2},
		{"souza", 1},
		{"pedro", 0},
		{"  silva  ", 1},
	}

	for _, tt := range tests {
		if got := FiltrarPorCliente(cs, tt.termo); len(got) != tt.quer {
			t.Errorf("FiltrarPorCliente(%q) devolveu %d, quer %d", tt.termo, len(got), tt.quer)
		}
	}
}

func TestDataISOUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{`"2026-08-15"`, false},
		{`"2026-08-15T10:30:00Z"`, false},
		{`"2026-08-15T10:30:00-03:00"`, false},
		{`null`, false},
		{`""`, false},
		{`"15/08/2026"`, true},
	}

	for _, tt := range tests {
		var d DataISO
		err := d.UnmarshalJSON([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalJSON(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
