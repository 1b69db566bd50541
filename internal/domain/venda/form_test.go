package venda

import (
	"errors"
	"testing"
	"time"
)

func formPreenchido() Formulario {
	f := Novo()
	f.Cliente = "Maria"
	f.Categoria = "Tradicional"
	f.Unidades = 10
	f.ValorUnitario = 5.50
	return f
}

func TestNovoDefaults(t *testing.T) {
	f := Novo()
	if f.Fase != FaseEditando {
		t.Errorf("fase inicial = %s, quer %s", f.Fase, FaseEditando)
	}
	if f.PrazoDias != PrazoPadrao {
		t.Errorf("prazo inicial = %d, quer %d", f.PrazoDias, PrazoPadrao)
	}
	if f.Pago {
		t.Error("venda nova deve começar como A receber")
	}
}

func TestValorTotal(t *testing.T) {
	tests := []struct {
		unidades int
		valor    float64
		quer     float64
	}{
		{10, 5.50, 55.00},
		{0, 5.50, 0},
		{3, 0, 0},
		{7, 2.25, 15.75},
	}
	for _, tt := range tests {
		f := Formulario{Unidades: tt.unidades, ValorUnitario: tt.valor}
		if got := f.ValorTotal(); got != tt.quer {
			t.Errorf("ValorTotal(%d × %v) = %v, quer %v", tt.unidades, tt.valor, got, tt.quer)
		}
	}
}

func TestValidar(t *testing.T) {
	tests := []struct {
		name     string
		mudar    func(*Formulario)
		querErro string // campo esperado; vazio = válido
	}{
		{"completo é válido", func(f *Formulario) {}, ""},
		{"sem cliente", func(f *Formulario) { f.Cliente = "" }, "cliente"},
		{"sem categoria", func(f *Formulario) { f.Categoria = "" }, "categoria"},
		{"unidades zero", func(f *Formulario) { f.Unidades = 0 }, "unidades"},
		{"unidades negativas", func(f *Formulario) { f.Unidades = -2 }, "unidades"},
		{"sem preço", func(f *Formulario) { f.ValorUnitario = 0 }, "valor_unitario"},
		{"preço negativo", func(f *Formulario) { f.ValorUnitario = -1 }, "valor_unitario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formPreenchido()
			tt.mudar(&f)
			err := f.Validar()
			if tt.querErro == "" {
				if err != nil {
					t.Fatalf("Validar() = %v, quer nil", err)
				}
				return
			}
			var ev *ErroValidacao
			if !errors.As(err, &ev) {
				t.Fatalf("Validar() = %v, quer *ErroValidacao", err)
			}
			if ev.Campo != tt.querErro {
				t.Errorf("campo = %s, quer %s", ev.Campo, tt.querErro)
			}
		})
	}
}

func TestSelecionarCategoriaLimpaPreco(t *testing.T) {
	f := formPreenchido()
	f.SelecionarCategoria("Nozes")
	if f.ValorUnitario != 0 {
		t.Error("trocar de categoria deve limpar o preço anterior")
	}
	f.SelecionarCategoria("")
	if f.Categoria != "" || f.ValorUnitario != 0 {
		t.Error("categoria vazia deve limpar seleção e preço")
	}
}

func TestAplicarPrecoDescartaResultadoVelho(t *testing.T) {
	f := Novo()
	f.SelecionarCategoria("Tradicional")
	// usuário troca de categoria antes da primeira consulta voltar
	f.SelecionarCategoria("Nozes")

	if f.AplicarPreco("Tradicional", 5.50) {
		t.Error("resultado da categoria antiga deveria ser descartado")
	}
	if f.ValorUnitario != 0 {
		t.Errorf("preço = %v, quer 0", f.ValorUnitario)
	}
	if !f.AplicarPreco("Nozes", 7.00) {
		t.Error("resultado da categoria atual deveria ser aplicado")
	}
	if f.ValorUnitario != 7.00 {
		t.Errorf("preço = %v, quer 7.00", f.ValorUnitario)
	}
}

func TestDescartarPreco(t *testing.T) {
	f := Novo()
	f.SelecionarCategoria("Tradicional")
	f.ValorUnitario = 5.50

	if f.DescartarPreco("Nozes") {
		t.Error("falha de categoria antiga não deve mexer no formulário")
	}
	if f.ValorUnitario != 5.50 {
		t.Error("preço da categoria atual foi perdido")
	}
	if !f.DescartarPreco("Tradicional") {
		t.Error("falha da categoria atual deve limpar o preço")
	}
	if f.ValorUnitario != 0 {
		t.Error("preço deveria ter sido limpo")
	}
}

func TestIniciarEnvio(t *testing.T) {
	f := formPreenchido()
	if err := f.IniciarEnvio(); err != nil {
		t.Fatalf("IniciarEnvio() = %v, quer nil", err)
	}
	if f.Fase != FaseEnviando {
		t.Errorf("fase = %s, quer %s", f.Fase, FaseEnviando)
	}

	// Segundo envio enquanto o primeiro está em voo é recusado.
	if err := f.IniciarEnvio(); !errors.Is(err, ErrEnvioEmAndamento) {
		t.Errorf("segundo envio = %v, quer ErrEnvioEmAndamento", err)
	}

	// Inválido não muda de fase nem vai à rede.
	g := formPreenchido()
	g.Cliente = ""
	if err := g.IniciarEnvio(); err == nil {
		t.Fatal("envio sem cliente deveria ser recusado")
	}
	if g.Fase != FaseEditando {
		t.Errorf("fase após recusa = %s, quer %s", g.Fase, FaseEditando)
	}
}

func TestConcluirEnvio(t *testing.T) {
	// Sucesso: volta aos valores iniciais.
	f := formPreenchido()
	_ = f.IniciarEnvio()
	f.ConcluirEnvio(nil)
	if f.Fase != FaseSucesso {
		t.Errorf("fase = %s, quer %s", f.Fase, FaseSucesso)
	}
	if f.Cliente != "" || f.Categoria != "" || f.Unidades != 0 || f.ValorUnitario != 0 {
		t.Errorf("sucesso deve zerar os campos, ficou %+v", f)
	}
	if f.PrazoDias != PrazoPadrao {
		t.Errorf("prazo deve voltar ao padrão, ficou %d", f.PrazoDias)
	}

	// Falha: preserva o que foi digitado.
	g := formPreenchido()
	_ = g.IniciarEnvio()
	g.ConcluirEnvio(errors.New("estoque insuficiente"))
	if g.Fase != FaseFalha {
		t.Errorf("fase = %s, quer %s", g.Fase, FaseFalha)
	}
	if g.Cliente != "Maria" || g.Unidades != 10 {
		t.Errorf("falha não deve perder os campos, ficou %+v", g)
	}
	if g.Erro == "" {
		t.Error("falha deve guardar a mensagem de erro")
	}
}

func TestMontar(t *testing.T) {
	agora := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	f := formPreenchido()
	f.PrazoDias = 15
	p := f.Montar(agora)

	if p.DataVenda != "2026-08-15T10:00:00Z" {
		t.Errorf("DataVenda = %s", p.DataVenda)
	}
	if p.Vencimento != "2026-08-30T10:00:00Z" {
		t.Errorf("Vencimento = %s, quer agora + 15 dias", p.Vencimento)
	}
	if p.ValorTotal != 55.00 {
		t.Errorf("ValorTotal = %v, quer 55.00", p.ValorTotal)
	}
	if p.Cliente != "Maria" || p.Categoria != "Tradicional" || p.Unidades != 10 {
		t.Errorf("payload incompleto: %+v", p)
	}
}
