package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Luum3/doceria-bot/internal/domain/venda"
)

// menuReplyKeyboard é a "barra de abas" do bot.
func menuReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton("🧁 Nova venda"), tgbotapi.NewKeyboardButton("📦 Estoque")},
			{tgbotapi.NewKeyboardButton("💰 Cobranças"), tgbotapi.NewKeyboardButton("📄 Histórico")},
		},
	}
}

func navKeyboard() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Cancelar", "nav:cancelar"),
	)
}

// listaKeyboard monta uma coluna de botões a partir de rótulos,
// com callback "<prefixo>:<índice>".
func listaKeyboard(rotulos []string, prefixo string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for i, r := range rotulos {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r, fmt.Sprintf("%s:%d", prefixo, i)),
		))
	}
	rows = append(rows, navKeyboard())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func prazoKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{}
	for _, d := range venda.PrazosDias {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d dias", d), fmt.Sprintf("vd:prazo:%d", d),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row, navKeyboard())
}

func statusPagamentoKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("A receber", "vd:pg:0"),
			tgbotapi.NewInlineKeyboardButtonData("Pago", "vd:pg:1"),
		),
		navKeyboard(),
	)
}

func precoKeyboard(temPreco bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	if temPreco {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Usar este preço", "vd:preco:ok"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✏️ Digitar outro valor", "vd:preco:manual"),
	))
	rows = append(rows, navKeyboard())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func resumoVendaKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Registrar venda", "vd:enviar"),
		),
		navKeyboard(),
	)
}

func estoqueKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Adicionar", "st:add"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Atualizar", "st:set"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Recarregar", "st:reload"),
		),
	)
}

func historicoKeyboard(numero, totalPaginas int) tgbotapi.InlineKeyboardMarkup {
	nav := []tgbotapi.InlineKeyboardButton{}
	if numero > 1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Anterior", "hs:ant"))
	}
	if numero < totalPaginas {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Próxima ➡️", "hs:prox"))
	}
	rows := [][]tgbotapi.InlineKeyboardButton{}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📥 Exportar .xlsx", "hs:export"),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Recarregar", "hs:reload"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
