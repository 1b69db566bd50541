package venda

import (
	"errors"
	"fmt"
)

// ErroValidacao é barrado antes de qualquer chamada à API.
type ErroValidacao struct {
	Campo  string
	Motivo string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Motivo)
}

// ErrEnvioEmAndamento: só um envio por vez; o botão fica travado
// enquanto a venda anterior não termina.
var ErrEnvioEmAndamento = errors.New("já existe um envio em andamento")
