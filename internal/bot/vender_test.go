package bot

import (
	"encoding/json"
	"testing"

	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/domain/venda"
)

// O payload do diálogo faz ida e volta por JSON no banco; os números
// voltam como float64 e o formulário precisa sobreviver a isso.
func TestFormPayloadRoundTrip(t *testing.T) {
	f := venda.Novo()
	f.Cliente = "Maria"
	f.Categoria = "Tradicional"
	f.Unidades = 10
	f.ValorUnitario = 5.50
	f.PrazoDias = 30
	f.Pago = true

	p := formParaPayload(f, dialog.Payload{"clientes": []string{"Maria", "João"}})

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var volta dialog.Payload
	if err := json.Unmarshal(raw, &volta); err != nil {
		t.Fatal(err)
	}

	g := formDoPayload(volta)
	if g != f {
		t.Errorf("formulário mudou na ida e volta:\nantes %+v\ndepois %+v", f, g)
	}
	if nomes := dialog.GetStrings(volta, "clientes"); len(nomes) != 2 || nomes[0] != "Maria" {
		t.Errorf("chaves auxiliares perdidas: %v", nomes)
	}
}

func TestFormDoPayloadVazio(t *testing.T) {
	f := formDoPayload(dialog.Payload{})
	if f.Fase != venda.FaseEditando || f.PrazoDias != venda.PrazoPadrao {
		t.Errorf("payload vazio deve dar formulário novo, deu %+v", f)
	}
}
