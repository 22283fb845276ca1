package metadomain

// AdImage representa uma imagem da biblioteca de mídia da conta
type AdImage struct {
	Hash   string `json:"hash"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Status string `json:"status"`
}

// AdVideo representa um vídeo da biblioteca. Length é a duração em segundos.
type AdVideo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Length    float64 `json:"length"`
	Picture   string  `json:"picture"`
	Source    string  `json:"source"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_time"`
}

// MediaRef é o formato reduzido das listagens de inventário (apenas ids),
// usado pelo delta sync para diferenciar itens já conhecidos
type MediaRef struct {
	ID   string `json:"id"`
	Hash string `json:"hash"`
}
