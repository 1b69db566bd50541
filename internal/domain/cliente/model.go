package cliente

// Cliente é dado de referência: vem da API e nunca é alterado pelo bot.
type Cliente struct {
	ID    int64  `json:"id"`
	Nome  string `json:"name"`
	Ativo bool   `json:"status"`
}

// Ativos filtra os clientes disponíveis para venda.
func Ativos(cs []Cliente) []Cliente {
	out := make([]Cliente, 0, len(cs))
	for _, c := range cs {
		if c.Ativo {
			out = append(out, c)
		}
	}
	return out
}
