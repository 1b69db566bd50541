package estoque

// Item é a posição de estoque de uma categoria, do jeito que a API devolve.
// A quantidade nunca é calculada localmente: todo ajuste passa pela API e
// o valor exibido vem sempre de uma releitura.
type Item struct {
	Categoria  string `json:"categoria"`
	Quantidade int    `json:"quantidade"`
}

// TotalGeral soma as unidades de todas as categorias.
func TotalGeral(itens []Item) int {
	total := 0
	for _, it := range itens {
		total += it.Quantidade
	}
	return total
}
