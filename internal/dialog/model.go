package dialog

type State string

const (
	StateIdle State = "idle"

	// Nova venda
	StateVendaCliente   State = "venda_cliente"
	StateVendaCategoria State = "venda_categoria"
	StateVendaUnidades  State = "venda_unidades"   // entrada de texto (int)
	StateVendaPreco     State = "venda_preco"      // usar preço da API ou digitar outro
	StateVendaPrecoTxt  State = "venda_preco_txt"  // entrada manual do valor unitário
	StateVendaPrazo     State = "venda_prazo"      // 7/15/30 dias
	StateVendaStatus    State = "venda_status"     // A receber | Pago
	StateVendaResumo    State = "venda_resumo"     // confirmação final

	// Estoque
	StateEstoqueMenu   State = "estoque_menu"
	StateEstoqueAddCat State = "estoque_add_cat"
	StateEstoqueAddQtd State = "estoque_add_qtd" // entrada de texto (int > 0)
	StateEstoqueSetCat State = "estoque_set_cat"
	StateEstoqueSetQtd State = "estoque_set_qtd" // entrada de texto (int >= 0)

	// Cobranças
	StateCobrancas      State = "cobrancas"
	StateCobrancasBusca State = "cobrancas_busca" // entrada do termo de busca

	// Histórico de cobranças pagas
	StateHistorico State = "historico"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}
