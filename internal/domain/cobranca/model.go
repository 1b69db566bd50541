package cobranca

import (
	"fmt"
	"strings"
	"time"
)

// DataISO aceita tanto datas puras ("2006-01-02") quanto timestamps
// RFC3339, que é o que a API mistura nos campos de data.
type DataISO struct {
	time.Time
}

func (d *DataISO) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("data inválida: %q", s)
}

func (d DataISO) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// Cobranca é uma cobrança em aberto (cobrancas_nao_pagas).
type Cobranca struct {
	ID         int64   `json:"id"`
	CriadaEm   DataISO `json:"created_at"`
	Pago       bool    `json:"status_pagamento"`
	Cliente    string  `json:"cliente"`
	Vencimento DataISO `json:"vencimento"`
	DataVenda  DataISO `json:"data_venda"`
	Valor      float64 `json:"valor"`
}

// Vencida é derivada no momento da leitura, nunca armazenada.
func (c Cobranca) Vencida(agora time.Time) bool {
	return c.Vencimento.Before(agora)
}

// Paga é o registro histórico imutável de uma cobrança quitada.
type Paga struct {
	Cliente    string  `json:"cliente"`
	Vencimento string  `json:"vencimento"`
	Valor      float64 `json:"valor"`
	Status     string  `json:"status"`
}

// FiltrarPorCliente devolve as cobranças cujo cliente contém o termo
// (busca case-insensitive, como no campo de busca da tela).
func FiltrarPorCliente(cs []Cobranca, termo string) []Cobranca {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return cs
	}
	out := make([]Cobranca, 0, len(cs))
	for _, c := range cs {
		if strings.Contains(strings.ToLower(c.Cliente), termo) {
			out = append(out, c)
		}
	}
	return out
}
