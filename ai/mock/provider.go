package mock

import "github.com/poiesic/lexindex/ai"

// MockProvider implements ai.AIProvider for testing.
type MockProvider struct {
	embedder *MockEmbedder
}

// NewMockProvider creates a provider backed by a default mock embedder.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
	}
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// GetMockEmbedder returns the concrete mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// Close is a no-op for the mock provider.
func (p *MockProvider) Close() error {
	return nil
}
