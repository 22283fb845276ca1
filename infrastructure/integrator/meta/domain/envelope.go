package metadomain

import (
	"encoding/json"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// Envelope é o formato padrão de resposta paginada da API Graph:
// { data: [...], paging: { next }, error: {...} }
type Envelope struct {
	Data   []json.RawMessage `json:"data"`
	Paging Paging            `json:"paging"`
	Error  *ErrorDetails     `json:"error"`
}
