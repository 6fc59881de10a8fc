package response_models

// CatalogPage is the payload of every catalog search.
type CatalogPage[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewCatalogPage[T any](items []T) CatalogPage[T] {
	return CatalogPage[T]{Items: items, Count: len(items)}
}

type HealthStatus struct {
	Status  string `json:"status"`
	LLM     string `json:"llm"`
	Catalog string `json:"catalog"`
}
