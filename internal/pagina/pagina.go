// Package pagina recorta uma coleção ordenada em páginas de tamanho
// fixo, do jeito que a tela de histórico exibe as cobranças pagas.
package pagina

// Janela é a fatia visível mais os metadados de navegação.
type Janela[T any] struct {
	Visiveis     []T
	Numero       int
	TotalPaginas int
}

// Recortar devolve a página pedida com o número já ajustado para
// [1, TotalPaginas]. Pedir além da última ou antes da primeira não é
// erro: o número só é grampeado. Coleção vazia devolve uma única
// página vazia, para a navegação continuar bem definida após um
// refetch que encolheu a lista.
func Recortar[T any](itens []T, tamanho, numero int) Janela[T] {
	if tamanho <= 0 {
		tamanho = 1
	}

	total := (len(itens) + tamanho - 1) / tamanho
	if total < 1 {
		total = 1
	}

	if numero < 1 {
		numero = 1
	}
	if numero > total {
		numero = total
	}

	inicio := (numero - 1) * tamanho
	fim := inicio + tamanho
	if inicio > len(itens) {
		inicio = len(itens)
	}
	if fim > len(itens) {
		fim = len(itens)
	}

	return Janela[T]{
		Visiveis:     itens[inicio:fim],
		Numero:       numero,
		TotalPaginas: total,
	}
}

// Proxima e Anterior devolvem o número da página vizinha; nas bordas
// o valor não muda (o Recortar seguinte grampearia de qualquer forma).
func Proxima(numero, totalPaginas int) int {
	if numero < totalPaginas {
		return numero + 1
	}
	return numero
}

func Anterior(numero int) int {
	if numero > 1 {
		return numero - 1
	}
	return numero
}
