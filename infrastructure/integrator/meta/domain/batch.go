package metadomain

// BatchRequest é uma sub-requisição do endpoint de batch da API Graph
type BatchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

// BatchResponse é o resultado de uma sub-requisição; Body vem como string
// JSON e precisa ser decodificado pelo chamador
type BatchResponse struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}
