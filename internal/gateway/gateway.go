// Package gateway é o único caminho entre o bot e a API da doceria.
// Toda chamada devolve (payload tipado, erro); nada estoura para fora
// sem virar ErroServico, ErroRede ou ErrPrecoNaoEncontrado.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Luum3/doceria-bot/internal/domain/cliente"
	"github.com/Luum3/doceria-bot/internal/domain/cobranca"
	"github.com/Luum3/doceria-bot/internal/domain/estoque"
	"github.com/Luum3/doceria-bot/internal/domain/venda"
	"github.com/Luum3/doceria-bot/internal/infra/metrics"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// detalheErro tenta extrair {"detail": "..."} do corpo de erro.
func detalheErro(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Detail
}

// fazer executa a chamada, contabiliza métricas e normaliza o erro.
// out == nil quando só importa o 2xx.
func (c *Client) fazer(ctx context.Context, method, endpoint string, in, out any) error {
	inicio := time.Now()
	err := c.fazerSemMetricas(ctx, method, endpoint, in, out)
	metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(inicio).Seconds())

	resultado := "ok"
	var es *ErroServico
	var er *ErroRede
	switch {
	case errors.As(err, &es):
		resultado = "service_error"
	case errors.As(err, &er):
		resultado = "network_error"
	case err != nil:
		resultado = "error"
	}
	metrics.APIRequests.WithLabelValues(endpoint, resultado).Inc()
	return err
}

func (c *Client) fazerSemMetricas(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("montar corpo de %s: %w", endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return fmt.Errorf("montar requisição de %s: %w", endpoint, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ErroRede{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ErroRede{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("API respondeu erro",
			"endpoint", endpoint, "status", resp.StatusCode)
		return &ErroServico{Status: resp.StatusCode, Detail: detalheErro(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar resposta de %s: %w", endpoint, err)
		}
	}
	return nil
}

// ListarClientes — GET clientes/listar_clientes.
func (c *Client) ListarClientes(ctx context.Context) ([]cliente.Cliente, error) {
	var out []cliente.Cliente
	if err := c.fazer(ctx, http.MethodGet, "clientes/listar_clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoriasEstoque — GET estoque/categorias_estoque.
func (c *Client) CategoriasEstoque(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.fazer(ctx, http.MethodGet, "estoque/categorias_estoque", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PrecoUnitario — POST estoque/preco_unitario. 404 vira
// ErrPrecoNaoEncontrado para o formulário tratar sem derrubar o fluxo.
func (c *Client) PrecoUnitario(ctx context.Context, categoria string) (float64, error) {
	in := map[string]string{"categoria": categoria}
	var out float64
	err := c.fazer(ctx, http.MethodPost, "estoque/preco_unitario", in, &out)
	var es *ErroServico
	if errors.As(err, &es) && es.Status == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", ErrPrecoNaoEncontrado, es.Error())
	}
	if err != nil {
		return 0, err
	}
	return out, nil
}

// Vender — POST vendas/vender.
func (c *Client) Vender(ctx context.Context, p venda.Payload) error {
	return c.fazer(ctx, http.MethodPost, "vendas/vender", p, nil)
}

// Estoque — GET estoque/estoque.
func (c *Client) Estoque(ctx context.Context) ([]estoque.Item, error) {
	var out []estoque.Item
	if err := c.fazer(ctx, http.MethodGet, "estoque/estoque", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdicionarAoEstoque — POST estoque/adicionar_ao_estoque. O servidor é
// quem soma; o bot nunca calcula a quantidade resultante.
func (c *Client) AdicionarAoEstoque(ctx context.Context, categoria string, quantidade int) error {
	in := map[string]any{"categoria": categoria, "quantidade": quantidade}
	return c.fazer(ctx, http.MethodPost, "estoque/adicionar_ao_estoque", in, nil)
}

// AtualizarEstoque — POST estoque/atualizar_estoque (define a quantidade).
func (c *Client) AtualizarEstoque(ctx context.Context, categoria string, quantidade int) error {
	in := map[string]any{"categoria": categoria, "quantidade": quantidade}
	return c.fazer(ctx, http.MethodPost, "estoque/atualizar_estoque", in, nil)
}

// RespostaPendentes é o corpo de cobranca/pendentes. O resumo que o
// servidor manda junto não é usado: os agregados são recalculados
// localmente a partir da lista (cobranca.Resumir).
type RespostaPendentes struct {
	Pendentes struct {
		Quantidade int     `json:"quantidade"`
		ValorTotal float64 `json:"valor_total"`
	} `json:"pendentes"`
	Vencidas struct {
		Quantidade int     `json:"quantidade"`
		ValorTotal float64 `json:"valor_total"`
	} `json:"vencidas"`
	TotalAReceber float64             `json:"total_a_receber"`
	NaoPagas      []cobranca.Cobranca `json:"cobrancas_nao_pagas"`
}

// Pendentes — GET cobranca/pendentes.
func (c *Client) Pendentes(ctx context.Context) (RespostaPendentes, error) {
	var out RespostaPendentes
	if err := c.fazer(ctx, http.MethodGet, "cobranca/pendentes", nil, &out); err != nil {
		return RespostaPendentes{}, err
	}
	return out, nil
}

// PagarCobranca — POST cobranca/pagar_cobranca. O vencimento vai como
// data pura (AAAA-MM-DD), igual ao contrato da API.
func (c *Client) PagarCobranca(ctx context.Context, cb cobranca.Cobranca) error {
	in := map[string]any{
		"cliente":    cb.Cliente,
		"vencimento": cb.Vencimento.Format("2006-01-02"),
		"valor":      cb.Valor,
	}
	return c.fazer(ctx, http.MethodPost, "cobranca/pagar_cobranca", in, nil)
}

// CobrancasPagas — GET cobranca/cobrancas_pagas.
func (c *Client) CobrancasPagas(ctx context.Context) ([]cobranca.Paga, error) {
	var out []cobranca.Paga
	if err := c.fazer(ctx, http.MethodGet, "cobranca/cobrancas_pagas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
