package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/estoque"
)

func textoEstoque(itens []estoque.Item) string {
	if len(itens) == 0 {
		return "Estoque vazio."
	}
	var sb strings.Builder
	sb.WriteString("📦 Estoque atual:\n")
	for _, it := range itens {
		sb.WriteString(fmt.Sprintf("• %s — %d unidades\n", it.Categoria, it.Quantidade))
	}
	sb.WriteString(fmt.Sprintf("\nTotal Geral: %d unidades", estoque.TotalGeral(itens)))
	return sb.String()
}

// mostrarEstoque carrega estoque e categorias em paralelo; a tela só
// fica pronta quando as duas leituras terminam.
func (b *Bot) mostrarEstoque(ctx context.Context, chatID int64, editMsgID *int) {
	var (
		itens []estoque.Item
		cats  []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		itens, err = b.gw.Estoque(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = b.gw.CategoriasEstoque(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		texto := "Não foi possível carregar o estoque: " + err.Error()
		if editMsgID != nil {
			b.editTextAndClear(chatID, *editMsgID, texto)
		} else {
			b.sendText(chatID, texto)
		}
		return
	}

	_ = b.states.Set(ctx, chatID, dialog.StateEstoqueMenu, dialog.Payload{"categorias": cats})
	if editMsgID != nil {
		b.editTextAndClear(chatID, *editMsgID, "Estoque recarregado.")
	}
	b.sendComKeyboard(chatID, textoEstoque(itens), estoqueKeyboard())
}

func (b *Bot) cbEstoque(ctx context.Context, chatID int64, msgID int, acao string) {
	st, _ := b.states.Get(ctx, chatID)
	cats := dialog.GetStrings(st.Payload, "categorias")

	switch {
	case acao == "reload":
		b.mostrarEstoque(ctx, chatID, &msgID)

	case acao == "add":
		_ = b.states.Set(ctx, chatID, dialog.StateEstoqueAddCat, st.Payload)
		b.editTextAndClear(chatID, msgID, "Adicionar ao estoque")
		b.sendComKeyboard(chatID, "Qual tipo de produto?", listaKeyboard(cats, "st:addcat"))

	case acao == "set":
		_ = b.states.Set(ctx, chatID, dialog.StateEstoqueSetCat, st.Payload)
		b.editTextAndClear(chatID, msgID, "Atualizar estoque")
		b.sendComKeyboard(chatID, "Qual tipo de produto?", listaKeyboard(cats, "st:setcat"))

	case strings.HasPrefix(acao, "addcat:"), strings.HasPrefix(acao, "setcat:"):
		adicionar := strings.HasPrefix(acao, "addcat:")
		idx := strings.TrimPrefix(strings.TrimPrefix(acao, "addcat:"), "setcat:")
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(cats) {
			b.editTextAndClear(chatID, msgID, "Categoria inválida, abra o Estoque de novo.")
			return
		}
		st.Payload["categoria"] = cats[i]
		if adicionar {
			_ = b.states.Set(ctx, chatID, dialog.StateEstoqueAddQtd, st.Payload)
			b.editTextAndClear(chatID, msgID,
				fmt.Sprintf("Tipo: %s\nQuantidade a adicionar:", cats[i]))
		} else {
			_ = b.states.Set(ctx, chatID, dialog.StateEstoqueSetQtd, st.Payload)
			b.editTextAndClear(chatID, msgID,
				fmt.Sprintf("Tipo: %s\nNova quantidade:", cats[i]))
		}
	}
}

// txtEstoqueQtd trata a quantidade digitada dos dois fluxos de escrita.
// Depois de escrever, a lista exibida é sempre uma releitura do servidor.
func (b *Bot) txtEstoqueQtd(ctx context.Context, chatID int64, st *dialog.Item, texto string, adicionar bool) {
	categoria, _ := dialog.GetString(st.Payload, "categoria")
	if categoria == "" {
		b.sendText(chatID, "Categoria perdida, abra o Estoque de novo.")
		return
	}

	qtd, err := strconv.Atoi(strings.TrimSpace(texto))
	if err != nil || (adicionar && qtd <= 0) || (!adicionar && qtd < 0) {
		if adicionar {
			b.sendText(chatID, "Digite um número inteiro maior que zero.")
		} else {
			b.sendText(chatID, "Digite um número inteiro maior ou igual a zero.")
		}
		return
	}

	if adicionar {
		err = b.gw.AdicionarAoEstoque(ctx, categoria, qtd)
	} else {
		err = b.gw.AtualizarEstoque(ctx, categoria, qtd)
	}
	if err != nil {
		// A escrita falhou: o diálogo continua no mesmo passo para o
		// usuário corrigir e reenviar.
		b.sendText(chatID, "Erro ao gravar no estoque: "+err.Error()+"\nTente outra quantidade ou cancele com /start.")
		return
	}

	_ = b.states.Set(ctx, chatID, dialog.StateEstoqueMenu, dialog.Payload{
		"categorias": st.Payload["categorias"],
	})

	itens, err := b.gw.Estoque(ctx)
	if err != nil {
		// Escrita confirmada; só a releitura falhou.
		b.sendText(chatID,
			"✅ Estoque gravado, mas não consegui recarregar a lista ("+err.Error()+"). Os números exibidos podem estar desatualizados.")
		return
	}
	b.sendText(chatID, "✅ Estoque gravado com sucesso!")
	b.sendComKeyboard(chatID, textoEstoque(itens), estoqueKeyboard())
}
