package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

/*** HELPERS ***/

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send falhou", "err", err)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("answerCallback falhou", "err", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendComKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = kb
	b.send(m)
}

func (b *Bot) editTextAndClear(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID, messageID, text,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	)
	b.send(edit)
}

// moeda formata em reais: R$ 1.234,56.
func moeda(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	centavos := int64(math.Round(v * 100))
	inteiro := strconv.FormatInt(centavos/100, 10)

	var sb strings.Builder
	resto := len(inteiro) % 3
	if resto > 0 {
		sb.WriteString(inteiro[:resto])
		if len(inteiro) > resto {
			sb.WriteString(".")
		}
	}
	for i := resto; i < len(inteiro); i += 3 {
		sb.WriteString(inteiro[i : i+3])
		if i+3 < len(inteiro) {
			sb.WriteString(".")
		}
	}

	sinal := ""
	if neg {
		sinal = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sinal, sb.String(), centavos%100)
}

func formatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

// parseValor aceita vírgula ou ponto como separador decimal.
func parseValor(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}
