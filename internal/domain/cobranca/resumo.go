package cobranca

import "time"

// Resumo são os agregados financeiros da tela de cobranças. Sempre
// recalculado a partir da coleção recém-lida; nunca ajustado no lugar.
type Resumo struct {
	PendentesQtd   int
	PendentesValor float64
	VencidasQtd    int
	VencidasValor  float64
	TotalAReceber  float64
}

// Resumir particiona as cobranças em pendentes e vencidas usando
// Vencimento < agora e soma valor e quantidade por partição.
// Coleção vazia devolve resumo zerado.
func Resumir(cs []Cobranca, agora time.Time) Resumo {
	var r Resumo
	for _, c := range cs {
		if c.Vencida(agora) {
			r.VencidasQtd++
			r.VencidasValor += c.Valor
		} else {
			r.PendentesQtd++
			r.PendentesValor += c.Valor
		}
	}
	r.TotalAReceber = r.PendentesValor + r.VencidasValor
	return r
}
