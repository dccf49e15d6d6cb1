// Package gatewaytest provides a canned-response Gateway for tests.
package gatewaytest

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

type Fake struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	Prompts []string
	Schemas []*genai.Schema
}

func (f *Fake) Generate(ctx context.Context, prompt string) (string, error) {
	return f.GenerateStructured(ctx, prompt, nil)
}

func (f *Fake) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Prompts = append(f.Prompts, prompt)
	f.Schemas = append(f.Schemas, schema)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}
