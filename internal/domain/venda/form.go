package venda

import "time"

type Fase string

const (
	FaseEditando Fase = "editando"
	FaseEnviando Fase = "enviando"
	FaseSucesso  Fase = "sucesso"
	FaseFalha    Fase = "falha"
)

// PrazosDias são as opções fixas de vencimento do formulário.
var PrazosDias = []int{7, 15, 30}

const PrazoPadrao = 7

// Formulario é o estado do fluxo de nova venda. A fase é explícita para
// não existirem combinações inválidas (ex.: enviando com erro exibido).
type Formulario struct {
	Fase          Fase
	Cliente       string
	Categoria     string
	Unidades      int
	ValorUnitario float64 // 0 = sem preço definido
	PrazoDias     int
	Pago          bool
	Erro          string
}

// Novo devolve o formulário nos valores iniciais da tela.
func Novo() Formulario {
	return Formulario{Fase: FaseEditando, PrazoDias: PrazoPadrao}
}

// ValorTotal é derivado; recalculado a cada mudança de fator.
func (f Formulario) ValorTotal() float64 {
	return float64(f.Unidades) * f.ValorUnitario
}

// SelecionarCategoria troca a categoria e limpa o preço anterior.
// Categoria vazia apenas limpa, sem disparar consulta nenhuma.
func (f *Formulario) SelecionarCategoria(cat string) {
	f.Categoria = cat
	f.ValorUnitario = 0
}

// AplicarPreco aplica o resultado da consulta de preço somente se a
// categoria consultada ainda for a selecionada. Resultado de uma
// categoria que já foi trocada é descartado (vale a última seleção,
// por identidade de categoria, não por ordem de chegada).
func (f *Formulario) AplicarPreco(cat string, preco float64) bool {
	if cat == "" || cat != f.Categoria {
		return false
	}
	f.ValorUnitario = preco
	return true
}

// DescartarPreco limpa o preço quando a consulta da categoria ainda
// selecionada falhou. O formulário segue editável.
func (f *Formulario) DescartarPreco(cat string) bool {
	if cat == "" || cat != f.Categoria {
		return false
	}
	f.ValorUnitario = 0
	return true
}

// Validar aplica a guarda de submissão; nada vai à rede se falhar.
func (f Formulario) Validar() error {
	switch {
	case f.Cliente == "":
		return &ErroValidacao{Campo: "cliente", Motivo: "selecione o cliente"}
	case f.Categoria == "":
		return &ErroValidacao{Campo: "categoria", Motivo: "selecione o tipo de brownie"}
	case f.Unidades <= 0:
		return &ErroValidacao{Campo: "unidades", Motivo: "informe um número de unidades maior que zero"}
	case f.ValorUnitario <= 0:
		return &ErroValidacao{Campo: "valor_unitario", Motivo: "informe um valor unitário válido"}
	}
	return nil
}

// IniciarEnvio valida e trava o formulário em FaseEnviando.
func (f *Formulario) IniciarEnvio() error {
	if f.Fase == FaseEnviando {
		return ErrEnvioEmAndamento
	}
	if err := f.Validar(); err != nil {
		return err
	}
	f.Fase = FaseEnviando
	f.Erro = ""
	return nil
}

// ConcluirEnvio fecha o ciclo: sucesso volta aos valores iniciais,
// falha preserva o que foi digitado para o usuário tentar de novo.
func (f *Formulario) ConcluirEnvio(err error) {
	if err != nil {
		f.Fase = FaseFalha
		f.Erro = err.Error()
		return
	}
	*f = Novo()
	f.Fase = FaseSucesso
}

// Payload é o corpo de vendas/vender.
type Payload struct {
	DataVenda     string  `json:"data_venda"`
	Pago          bool    `json:"status_pagamento"`
	Cliente       string  `json:"cliente"`
	Categoria     string  `json:"categoria_produto"`
	Unidades      int     `json:"qtd_unidades"`
	Vencimento    string  `json:"data_vencimento"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorTotal    float64 `json:"valor_total"`
}

// Montar calcula as datas e o total no momento do envio. O total é
// sempre recomputado aqui, nunca reaproveitado de um estado antigo.
func (f Formulario) Montar(agora time.Time) Payload {
	return Payload{
		DataVenda:     agora.Format(time.RFC3339),
		Pago:          f.Pago,
		Cliente:       f.Cliente,
		Categoria:     f.Categoria,
		Unidades:      f.Unidades,
		Vencimento:    agora.AddDate(0, 0, f.PrazoDias).Format(time.RFC3339),
		ValorUnitario: f.ValorUnitario,
		ValorTotal:    f.ValorTotal(),
	}
}
