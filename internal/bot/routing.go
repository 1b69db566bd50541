package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Luum3/doceria-bot/internal/dialog"
)

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Barra de abas
	switch msg.Text {
	case "🧁 Nova venda":
		b.iniciarVenda(ctx, chatID)
		return
	case "📦 Estoque":
		b.mostrarEstoque(ctx, chatID, nil)
		return
	case "💰 Cobranças":
		b.mostrarCobrancas(ctx, chatID, "")
		return
	case "📄 Histórico":
		b.carregarHistorico(ctx, chatID)
		return
	}

	// Entradas de texto dos diálogos
	st, _ := b.states.Get(ctx, chatID)
	switch st.State {
	case dialog.StateVendaUnidades:
		b.txtVendaUnidades(ctx, chatID, st, msg.Text)
	case dialog.StateVendaPrecoTxt:
		b.txtVendaPreco(ctx, chatID, st, msg.Text)
	case dialog.StateEstoqueAddQtd:
		b.txtEstoqueQtd(ctx, chatID, st, msg.Text, true)
	case dialog.StateEstoqueSetQtd:
		b.txtEstoqueQtd(ctx, chatID, st, msg.Text, false)
	case dialog.StateCobrancasBusca:
		b.txtCobrancasBusca(ctx, chatID, msg.Text)
	default:
		b.sendText(chatID, "Use os botões do menu para navegar. /help mostra os comandos.")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		_ = b.states.Reset(ctx, chatID)
		m := tgbotapi.NewMessage(chatID,
			"Bem-vindo ao controle da doceria! Use os botões abaixo para registrar vendas, ver o estoque e acompanhar as cobranças.")
		m.ReplyMarkup = menuReplyKeyboard()
		b.send(m)
	case "help":
		b.sendText(chatID,
			"Comandos:\n/start — abrir o menu\n/help — ajuda\n\nBotões: Nova venda, Estoque, Cobranças e Histórico.")
	default:
		b.sendText(chatID, "Não conheço esse comando. Digite /help.")
	}
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	data := cb.Data

	b.answerCallback(cb, "", false)

	if data == "nav:cancelar" {
		_ = b.states.Reset(ctx, chatID)
		b.editTextAndClear(chatID, msgID, "Operação cancelada.")
		return
	}

	switch {
	case strings.HasPrefix(data, "vd:"):
		b.cbVenda(ctx, chatID, msgID, strings.TrimPrefix(data, "vd:"))
	case strings.HasPrefix(data, "st:"):
		b.cbEstoque(ctx, chatID, msgID, strings.TrimPrefix(data, "st:"))
	case strings.HasPrefix(data, "cb:"):
		b.cbCobrancas(ctx, chatID, msgID, strings.TrimPrefix(data, "cb:"))
	case strings.HasPrefix(data, "hs:"):
		b.cbHistorico(ctx, chatID, msgID, strings.TrimPrefix(data, "hs:"))
	default:
		b.log.Debug("callback desconhecido", "data", data)
	}
}
