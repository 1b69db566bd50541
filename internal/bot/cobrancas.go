package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/cobranca"
)

// maxBotoesPagar limita as linhas de botão por mensagem do Telegram;
// a busca por cliente estreita a lista quando há mais cobranças.
const maxBotoesPagar = 10

func textoCobrancas(cs []cobranca.Cobranca, r cobranca.Resumo, busca string, agora time.Time) string {
	var sb strings.Builder
	sb.WriteString("💰 Controle de Cobranças\n\n")
	sb.WriteString(fmt.Sprintf("Pendentes: %s (%d cobranças)\n", moeda(r.PendentesValor), r.PendentesQtd))
	sb.WriteString(fmt.Sprintf("Vencidas: %s (%d cobranças)\n", moeda(r.VencidasValor), r.VencidasQtd))
	sb.WriteString(fmt.Sprintf("Total a Receber: %s\n", moeda(r.TotalAReceber)))

	if busca != "" {
		sb.WriteString(fmt.Sprintf("\n🔍 Filtro: %q\n", busca))
	}

	if len(cs) == 0 {
		sb.WriteString("\nNenhuma cobrança ativa encontrada.")
		return sb.String()
	}

	sb.WriteString("\nCobranças ativas:\n")
	for _, c := range cs {
		marca := "Pendente"
		if c.Vencida(agora) {
			marca = "⚠️ Vencida"
		}
		sb.WriteString(fmt.Sprintf("• %s — %s — venc. %s — %s\n",
			c.Cliente, moeda(c.Valor), formatarData(c.Vencimento.Time), marca))
	}
	return sb.String()
}

func cobrancasKeyboard(cs []cobranca.Cobranca) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	for i, c := range cs {
		if i == maxBotoesPagar {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Pagar — %s (%s)", c.Cliente, moeda(c.Valor)),
				fmt.Sprintf("cb:pagar:%d", c.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔍 Buscar cliente", "cb:busca"),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Recarregar", "cb:reload"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// mostrarCobrancas relê as pendências e recalcula o resumo localmente
// a partir da lista; os agregados nunca são ajustados no lugar.
func (b *Bot) mostrarCobrancas(ctx context.Context, chatID int64, busca string) {
	resp, err := b.gw.Pendentes(ctx)
	if err != nil {
		b.sendText(chatID, "Não foi possível carregar as cobranças: "+err.Error())
		return
	}

	v := b.visaoDo(chatID)
	b.mu.Lock()
	v.cobrancas = resp.NaoPagas
	b.mu.Unlock()

	agora := time.Now()
	filtradas := cobranca.FiltrarPorCliente(resp.NaoPagas, busca)
	r := cobranca.Resumir(resp.NaoPagas, agora)

	_ = b.states.Set(ctx, chatID, dialog.StateCobrancas, dialog.Payload{"busca": busca})
	b.sendComKeyboard(chatID, textoCobrancas(filtradas, r, busca, agora), cobrancasKeyboard(filtradas))
}

func (b *Bot) cbCobrancas(ctx context.Context, chatID int64, msgID int, acao string) {
	st, _ := b.states.Get(ctx, chatID)
	busca, _ := dialog.GetString(st.Payload, "busca")

	switch {
	case acao == "reload":
		b.editTextAndClear(chatID, msgID, "Recarregando cobranças…")
		b.mostrarCobrancas(ctx, chatID, busca)

	case acao == "busca":
		_ = b.states.Set(ctx, chatID, dialog.StateCobrancasBusca, st.Payload)
		b.sendText(chatID, "Digite o nome (ou parte do nome) do cliente:")

	case strings.HasPrefix(acao, "pagar:"):
		id, err := strconv.ParseInt(strings.TrimPrefix(acao, "pagar:"), 10, 64)
		if err != nil {
			return
		}
		b.pagarCobranca(ctx, chatID, msgID, id, busca)
	}
}

func (b *Bot) txtCobrancasBusca(ctx context.Context, chatID int64, termo string) {
	b.mostrarCobrancas(ctx, chatID, strings.TrimSpace(termo))
}

func (b *Bot) pagarCobranca(ctx context.Context, chatID int64, msgID int, id int64, busca string) {
	b.mu.Lock()
	var alvo *cobranca.Cobranca
	if v, ok := b.visoes[chatID]; ok {
		for i := range v.cobrancas {
			if v.cobrancas[i].ID == id {
				alvo = &v.cobrancas[i]
				break
			}
		}
	}
	b.mu.Unlock()

	if alvo == nil {
		b.editTextAndClear(chatID, msgID, "Cobrança não encontrada; recarregue a lista.")
		return
	}

	if err := b.gw.PagarCobranca(ctx, *alvo); err != nil {
		b.sendText(chatID, "Erro ao marcar como paga: "+err.Error())
		return
	}

	b.editTextAndClear(chatID, msgID,
		fmt.Sprintf("✅ Cobrança de %s (%s) marcada como paga.", alvo.Cliente, moeda(alvo.Valor)))

	// O pagamento já está confirmado no servidor; se a releitura falhar
	// avisamos que a lista pode estar defasada, mas sem tratar o
	// pagamento como erro.
	resp, err := b.gw.Pendentes(ctx)
	if err != nil {
		b.sendText(chatID,
			"⚠️ Não consegui recarregar a lista ("+err.Error()+"). A cobrança paga ainda pode aparecer como pendente até a próxima atualização.")
		return
	}

	v := b.visaoDo(chatID)
	b.mu.Lock()
	v.cobrancas = resp.NaoPagas
	b.mu.Unlock()

	agora := time.Now()
	filtradas := cobranca.FiltrarPorCliente(resp.NaoPagas, busca)
	r := cobranca.Resumir(resp.NaoPagas, agora)
	b.sendComKeyboard(chatID, textoCobrancas(filtradas, r, busca, agora), cobrancasKeyboard(filtradas))
}
