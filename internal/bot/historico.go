package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/cobranca"
	"github.com/Luum3/doceria-bot/internal/pagina"
)

// carregarHistorico busca todas as cobranças pagas e mostra a primeira
// página. A coleção fica na visão do chat até a próxima leitura.
func (b *Bot) carregarHistorico(ctx context.Context, chatID int64) {
	pagas, err := b.gw.CobrancasPagas(ctx)
	if err != nil {
		b.sendText(chatID, "Não foi possível carregar o histórico: "+err.Error())
		return
	}

	v := b.visaoDo(chatID)
	b.mu.Lock()
	v.pagas = pagas
	v.pagina = 1
	b.mu.Unlock()

	_ = b.states.Set(ctx, chatID, dialog.StateHistorico, dialog.Payload{})
	b.mostrarPaginaHistorico(chatID, nil)
}

func (b *Bot) mostrarPaginaHistorico(chatID int64, editMsgID *int) {
	v := b.visaoDo(chatID)
	b.mu.Lock()
	pagas := v.pagas
	numero := v.pagina
	b.mu.Unlock()

	// Recortar grampeia o número mesmo quando a lista encolheu.
	j := pagina.Recortar(pagas, tamanhoPaginaHistorico, numero)
	b.mu.Lock()
	v.pagina = j.Numero
	b.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("📄 Histórico de Cobranças Pagas\n\n")
	if len(pagas) == 0 {
		sb.WriteString("Nenhuma cobrança paga encontrada.")
	} else {
		for _, p := range j.Visiveis {
			sb.WriteString(fmt.Sprintf("• %s — %s — venc. %s — %s\n",
				p.Cliente, moeda(p.Valor), p.Vencimento, p.Status))
		}
		sb.WriteString(fmt.Sprintf("\nPágina %d de %d", j.Numero, j.TotalPaginas))
	}

	kb := historicoKeyboard(j.Numero, j.TotalPaginas)
	if editMsgID != nil {
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, *editMsgID, sb.String(), kb))
		return
	}
	b.sendComKeyboard(chatID, sb.String(), kb)
}

func (b *Bot) cbHistorico(ctx context.Context, chatID int64, msgID int, acao string) {
	v := b.visaoDo(chatID)

	switch acao {
	case "prox", "ant":
		b.mu.Lock()
		total := (len(v.pagas) + tamanhoPaginaHistorico - 1) / tamanhoPaginaHistorico
		if acao == "prox" {
			v.pagina = pagina.Proxima(v.pagina, total)
		} else {
			v.pagina = pagina.Anterior(v.pagina)
		}
		b.mu.Unlock()
		b.mostrarPaginaHistorico(chatID, &msgID)

	case "reload":
		pagas, err := b.gw.CobrancasPagas(ctx)
		if err != nil {
			b.sendText(chatID, "Não foi possível recarregar o histórico: "+err.Error())
			return
		}
		b.mu.Lock()
		v.pagas = pagas
		b.mu.Unlock()
		b.mostrarPaginaHistorico(chatID, &msgID)

	case "export":
		b.exportarHistoricoExcel(chatID)
	}
}

// exportarHistoricoExcel gera o .xlsx com todas as cobranças pagas da
// última leitura e envia como documento no chat.
func (b *Bot) exportarHistoricoExcel(chatID int64) {
	b.mu.Lock()
	var pagas []cobranca.Paga
	if v, ok := b.visoes[chatID]; ok {
		pagas = v.pagas
	}
	b.mu.Unlock()

	if len(pagas) == 0 {
		b.sendText(chatID, "Nada para exportar: o histórico está vazio.")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"cliente", "vencimento", "valor", "status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		b.sendText(chatID, "Erro ao montar o arquivo (cabeçalho).")
		return
	}

	row := 2
	for _, p := range pagas {
		linha := []interface{}{p.Cliente, p.Vencimento, p.Valor, p.Status}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			b.sendText(chatID, "Erro ao montar o arquivo (células).")
			return
		}
		if err := f.SetSheetRow(sheet, cell, &linha); err != nil {
			b.sendText(chatID, "Erro ao montar o arquivo (linhas).")
			return
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		b.sendText(chatID, "Erro ao gravar o arquivo.")
		return
	}

	nome := fmt.Sprintf("cobrancas_pagas_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  nome,
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("Histórico de cobranças pagas (%d registros).", len(pagas))
	b.send(doc)
}
