package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/cliente"
	"github.com/Luum3/doceria-bot/internal/domain/cobranca"
	"github.com/Luum3/doceria-bot/internal/domain/estoque"
	"github.com/Luum3/doceria-bot/internal/domain/venda"
	"github.com/Luum3/doceria-bot/internal/gateway"
)

const tamanhoPaginaHistorico = 8

// Gateway é o que o bot precisa da API remota; *gateway.Client implementa.
type Gateway interface {
	ListarClientes(ctx context.Context) ([]cliente.Cliente, error)
	CategoriasEstoque(ctx context.Context) ([]string, error)
	PrecoUnitario(ctx context.Context, categoria string) (float64, error)
	Vender(ctx context.Context, p venda.Payload) error
	Estoque(ctx context.Context) ([]estoque.Item, error)
	AdicionarAoEstoque(ctx context.Context, categoria string, quantidade int) error
	AtualizarEstoque(ctx context.Context, categoria string, quantidade int) error
	Pendentes(ctx context.Context) (gateway.RespostaPendentes, error)
	PagarCobranca(ctx context.Context, cb cobranca.Cobranca) error
	CobrancasPagas(ctx context.Context) ([]cobranca.Paga, error)
}

// visao é o estado transitório da tela de um chat: coleções recém-lidas
// e a página do histórico. Descartado a cada nova leitura.
type visao struct {
	cobrancas []cobranca.Cobranca
	pagas     []cobranca.Paga
	pagina    int
}

type Bot struct {
	api    *tgbotapi.BotAPI
	log    *slog.Logger
	gw     Gateway
	states dialog.Store

	mu       sync.Mutex
	visoes   map[int64]*visao
	enviando map[int64]bool // trava de envio de venda por chat
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, gw Gateway, states dialog.Store) *Bot {
	return &Bot{
		api:      api,
		log:      log,
		gw:       gw,
		states:   states,
		visoes:   map[int64]*visao{},
		enviando: map[int64]bool{},
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) visaoDo(chatID int64) *visao {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.visoes[chatID]
	if !ok {
		v = &visao{pagina: 1}
		b.visoes[chatID] = v
	}
	return v
}

// travarEnvio devolve false se já há uma venda em voo neste chat.
func (b *Bot) travarEnvio(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.enviando[chatID] {
		return false
	}
	b.enviando[chatID] = true
	return true
}

func (b *Bot) liberarEnvio(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.enviando, chatID)
}
