package gateway

import (
	"errors"
	"fmt"
)

// ErroServico é uma resposta não-2xx da API. Detail vem do corpo
// {"detail": "..."} quando o serviço mandou; senão fica a mensagem
// genérica do status.
type ErroServico struct {
	Status int
	Detail string
}

func (e *ErroServico) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("a API respondeu com status %d", e.Status)
}

// ErrPrecoNaoEncontrado: consulta de preço para categoria desconhecida.
var ErrPrecoNaoEncontrado = errors.New("preço não encontrado para esta categoria")

// ErroRede é falha de transporte: a requisição nem completou.
type ErroRede struct {
	Endpoint string
	Err      error
}

func (e *ErroRede) Error() string {
	return fmt.Sprintf("falha de rede em %s: %v", e.Endpoint, e.Err)
}

func (e *ErroRede) Unwrap() error { return e.Err }
