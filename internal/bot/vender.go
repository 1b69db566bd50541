package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/cliente"
	"github.com/Luum3/doceria-bot/internal/domain/venda"
	"github.com/Luum3/doceria-bot/internal/infra/metrics"
)

// formDoPayload reconstrói o formulário salvo no diálogo.
func formDoPayload(p dialog.Payload) venda.Formulario {
	f := venda.Novo()
	if s, ok := dialog.GetString(p, "fase"); ok && s != "" {
		f.Fase = venda.Fase(s)
	}
	if s, ok := dialog.GetString(p, "cliente"); ok {
		f.Cliente = s
	}
	if s, ok := dialog.GetString(p, "categoria"); ok {
		f.Categoria = s
	}
	if n, ok := dialog.GetInt(p, "unidades"); ok {
		f.Unidades = n
	}
	if v, ok := dialog.GetFloat(p, "valor_unitario"); ok {
		f.ValorUnitario = v
	}
	if n, ok := dialog.GetInt(p, "prazo_dias"); ok && n > 0 {
		f.PrazoDias = n
	}
	if v, ok := dialog.GetBool(p, "pago"); ok {
		f.Pago = v
	}
	if s, ok := dialog.GetString(p, "erro"); ok {
		f.Erro = s
	}
	return f
}

// formParaPayload grava o formulário por cima do payload existente,
// preservando chaves auxiliares (listas de clientes/categorias).
func formParaPayload(f venda.Formulario, p dialog.Payload) dialog.Payload {
	if p == nil {
		p = dialog.Payload{}
	}
	p["fase"] = string(f.Fase)
	p["cliente"] = f.Cliente
	p["categoria"] = f.Categoria
	p["unidades"] = f.Unidades
	p["valor_unitario"] = f.ValorUnitario
	p["prazo_dias"] = f.PrazoDias
	p["pago"] = f.Pago
	p["erro"] = f.Erro
	return p
}

func (b *Bot) iniciarVenda(ctx context.Context, chatID int64) {
	cs, err := b.gw.ListarClientes(ctx)
	if err != nil {
		b.sendText(chatID, "Não foi possível carregar os clientes: "+err.Error())
		return
	}
	ativos := cliente.Ativos(cs)
	if len(ativos) == 0 {
		b.sendText(chatID, "Nenhum cliente ativo cadastrado.")
		return
	}

	nomes := make([]string, 0, len(ativos))
	for _, c := range ativos {
		nomes = append(nomes, c.Nome)
	}

	p := formParaPayload(venda.Novo(), dialog.Payload{"clientes": nomes})
	_ = b.states.Set(ctx, chatID, dialog.StateVendaCliente, p)
	b.sendComKeyboard(chatID, "Nova venda — escolha o cliente:", listaKeyboard(nomes, "vd:cli"))
}

func (b *Bot) cbVenda(ctx context.Context, chatID int64, msgID int, acao string) {
	st, _ := b.states.Get(ctx, chatID)
	f := formDoPayload(st.Payload)

	switch {
	case strings.HasPrefix(acao, "cli:"):
		nomes := dialog.GetStrings(st.Payload, "clientes")
		i, err := strconv.Atoi(strings.TrimPrefix(acao, "cli:"))
		if err != nil || i < 0 || i >= len(nomes) {
			b.editTextAndClear(chatID, msgID, "Cliente inválido, recomece pela aba Nova venda.")
			return
		}
		f.Cliente = nomes[i]
		b.perguntarCategoria(ctx, chatID, msgID, f, st.Payload)

	case strings.HasPrefix(acao, "cat:"):
		cats := dialog.GetStrings(st.Payload, "categorias")
		i, err := strconv.Atoi(strings.TrimPrefix(acao, "cat:"))
		if err != nil || i < 0 || i >= len(cats) {
			b.editTextAndClear(chatID, msgID, "Categoria inválida, recomece pela aba Nova venda.")
			return
		}
		f.SelecionarCategoria(cats[i])
		_ = b.states.Set(ctx, chatID, dialog.StateVendaUnidades, formParaPayload(f, st.Payload))

		b.editTextAndClear(chatID, msgID,
			fmt.Sprintf("Tipo: %s\nBuscando o preço unitário…\n\nQuantas unidades?", f.Categoria))
		// A consulta roda em paralelo; a digitação das unidades não espera.
		go b.resolverPreco(ctx, chatID, f.Categoria)

	case acao == "preco:ok":
		if f.ValorUnitario <= 0 {
			b.sendText(chatID, "Ainda estou sem o preço da tabela. Digite o valor unitário:")
			_ = b.states.Set(ctx, chatID, dialog.StateVendaPrecoTxt, formParaPayload(f, st.Payload))
			return
		}
		b.perguntarPrazo(ctx, chatID, msgID, f, st.Payload)

	case acao == "preco:manual":
		_ = b.states.Set(ctx, chatID, dialog.StateVendaPrecoTxt, formParaPayload(f, st.Payload))
		b.editTextAndClear(chatID, msgID, "Digite o valor unitário (ex.: 5,50):")

	case strings.HasPrefix(acao, "prazo:"):
		d, err := strconv.Atoi(strings.TrimPrefix(acao, "prazo:"))
		if err != nil {
			return
		}
		f.PrazoDias = d
		_ = b.states.Set(ctx, chatID, dialog.StateVendaStatus, formParaPayload(f, st.Payload))
		b.editTextAndClear(chatID, msgID, fmt.Sprintf("Prazo: %d dias", d))
		b.sendComKeyboard(chatID, "Status do pagamento:", statusPagamentoKeyboard())

	case strings.HasPrefix(acao, "pg:"):
		f.Pago = strings.TrimPrefix(acao, "pg:") == "1"
		b.mostrarResumoVenda(ctx, chatID, msgID, f, st.Payload)

	case acao == "enviar":
		b.submeterVenda(ctx, chatID, msgID, f, st.Payload)
	}
}

func (b *Bot) perguntarCategoria(ctx context.Context, chatID int64, msgID int, f venda.Formulario, p dialog.Payload) {
	cats, err := b.gw.CategoriasEstoque(ctx)
	if err != nil {
		b.editTextAndClear(chatID, msgID, "Não foi possível carregar os tipos de brownie: "+err.Error())
		return
	}
	p["categorias"] = cats
	_ = b.states.Set(ctx, chatID, dialog.StateVendaCategoria, formParaPayload(f, p))
	b.editTextAndClear(chatID, msgID, "Cliente: "+f.Cliente)
	b.sendComKeyboard(chatID, "Escolha o tipo de brownie:", listaKeyboard(cats, "vd:cat"))
}

// resolverPreco consulta o preço unitário da categoria e aplica o
// resultado só se ela ainda for a selecionada no formulário — se o
// usuário trocou de categoria no meio do caminho, o resultado velho é
// descartado em vez de sobrescrever o preço novo.
func (b *Bot) resolverPreco(ctx context.Context, chatID int64, categoria string) {
	reqCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	preco, err := b.gw.PrecoUnitario(reqCtx, categoria)

	st, _ := b.states.Get(ctx, chatID)
	f := formDoPayload(st.Payload)

	if err != nil {
		if !f.DescartarPreco(categoria) {
			b.log.Debug("resultado de preço descartado (categoria trocada)",
				"categoria", categoria)
			return
		}
		_ = b.states.Set(ctx, chatID, st.State, formParaPayload(f, st.Payload))
		b.sendText(chatID, fmt.Sprintf(
			"Não achei o preço de %s (%v). Você ainda pode digitar o valor unitário manualmente.",
			categoria, err))
		return
	}

	if !f.AplicarPreco(categoria, preco) {
		b.log.Debug("resultado de preço descartado (categoria trocada)",
			"categoria", categoria)
		return
	}
	_ = b.states.Set(ctx, chatID, st.State, formParaPayload(f, st.Payload))
	b.sendText(chatID, fmt.Sprintf("Preço unitário de %s: %s", categoria, moeda(preco)))
}

func (b *Bot) txtVendaUnidades(ctx context.Context, chatID int64, st *dialog.Item, texto string) {
	n, err := strconv.Atoi(strings.TrimSpace(texto))
	if err != nil || n <= 0 {
		b.sendText(chatID, "Digite um número inteiro de unidades maior que zero.")
		return
	}
	f := formDoPayload(st.Payload)
	f.Unidades = n
	_ = b.states.Set(ctx, chatID, dialog.StateVendaPreco, formParaPayload(f, st.Payload))

	if f.ValorUnitario > 0 {
		b.sendComKeyboard(chatID,
			fmt.Sprintf("Unidades: %d\nPreço da tabela: %s\nTotal parcial: %s",
				n, moeda(f.ValorUnitario), moeda(f.ValorTotal())),
			precoKeyboard(true))
		return
	}
	b.sendComKeyboard(chatID,
		fmt.Sprintf("Unidades: %d\nAinda sem preço da tabela para %s.", n, f.Categoria),
		precoKeyboard(false))
}

func (b *Bot) txtVendaPreco(ctx context.Context, chatID int64, st *dialog.Item, texto string) {
	v, err := parseValor(texto)
	if err != nil || v <= 0 {
		b.sendText(chatID, "Valor inválido. Digite algo como 5,50.")
		return
	}
	f := formDoPayload(st.Payload)
	f.ValorUnitario = v
	_ = b.states.Set(ctx, chatID, dialog.StateVendaPrazo, formParaPayload(f, st.Payload))
	b.sendComKeyboard(chatID,
		fmt.Sprintf("Valor unitário: %s\nTotal parcial: %s\n\nPrazo de pagamento:",
			moeda(v), moeda(f.ValorTotal())),
		prazoKeyboard())
}

func (b *Bot) perguntarPrazo(ctx context.Context, chatID int64, msgID int, f venda.Formulario, p dialog.Payload) {
	_ = b.states.Set(ctx, chatID, dialog.StateVendaPrazo, formParaPayload(f, p))
	b.editTextAndClear(chatID, msgID,
		fmt.Sprintf("Valor unitário: %s\nTotal parcial: %s", moeda(f.ValorUnitario), moeda(f.ValorTotal())))
	b.sendComKeyboard(chatID, "Prazo de pagamento:", prazoKeyboard())
}

func (b *Bot) mostrarResumoVenda(ctx context.Context, chatID int64, msgID int, f venda.Formulario, p dialog.Payload) {
	_ = b.states.Set(ctx, chatID, dialog.StateVendaResumo, formParaPayload(f, p))

	status := "A receber"
	if f.Pago {
		status = "Pago"
	}
	texto := fmt.Sprintf(
		"Confira a venda:\n\nCliente: %s\nTipo: %s\nUnidades: %d\nValor unitário: %s\nPrazo: %d dias\nStatus: %s\n\nValor Total: %s",
		f.Cliente, f.Categoria, f.Unidades, moeda(f.ValorUnitario), f.PrazoDias, status, moeda(f.ValorTotal()),
	)
	b.editTextAndClear(chatID, msgID, "Status: "+status)
	b.sendComKeyboard(chatID, texto, resumoVendaKeyboard())
}

func (b *Bot) submeterVenda(ctx context.Context, chatID int64, msgID int, f venda.Formulario, p dialog.Payload) {
	if !b.travarEnvio(chatID) {
		b.sendText(chatID, "Já existe uma venda sendo registrada, aguarde.")
		return
	}
	defer b.liberarEnvio(chatID)

	if err := f.IniciarEnvio(); err != nil {
		var ev *venda.ErroValidacao
		if errors.As(err, &ev) {
			// Guarda de validação: nada foi à rede.
			b.sendText(chatID, "Não foi possível registrar: "+ev.Motivo)
			return
		}
		b.sendText(chatID, err.Error())
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateVendaResumo, formParaPayload(f, p))

	err := b.gw.Vender(ctx, f.Montar(time.Now()))
	f.ConcluirEnvio(err)

	if err != nil {
		// Valores preservados; o mesmo botão tenta de novo.
		_ = b.states.Set(ctx, chatID, dialog.StateVendaResumo, formParaPayload(f, p))
		b.sendComKeyboard(chatID,
			"Erro ao registrar a venda: "+err.Error()+"\nSeus dados foram mantidos, tente novamente.",
			resumoVendaKeyboard())
		return
	}

	metrics.VendasRegistradas.Inc()
	_ = b.states.Reset(ctx, chatID)
	b.editTextAndClear(chatID, msgID, "✅ Venda registrada com sucesso!")

	// Releitura pós-escrita: o estoque exibido vem do servidor, nunca
	// de um ajuste local.
	itens, err := b.gw.Estoque(ctx)
	if err != nil {
		b.sendText(chatID,
			"A venda foi registrada, mas não consegui recarregar o estoque ("+err.Error()+"). A lista pode estar desatualizada.")
		return
	}
	b.sendText(chatID, textoEstoque(itens))
}
