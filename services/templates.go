package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// TemplateStore holds the pristine page documents, read once at startup and
// never mutated. Every render starts from one of these strings.
type TemplateStore struct {
	home      string
	expertise string
}

// NewTemplateStore reads home.html and expertise.html from dir. A missing or
// unreadable document is a startup failure, not a request-time condition.
func NewTemplateStore(dir string) (*TemplateStore, error) {
	home, err := os.ReadFile(filepath.Join(dir, "home.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to read home template: %v", err)
	}

	expertise, err := os.ReadFile(filepath.Join(dir, "expertise.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to read expertise template: %v", err)
	}

	return &TemplateStore{
		home:      string(home),
		expertise: string(expertise),
	}, nil
}

// Home returns the pristine landing page document
func (s *TemplateStore) Home() string {
	return s.home
}

// Expertise returns the pristine shell shared by all metadata-injected pages
func (s *TemplateStore) Expertise() string {
	return s.expertise
}
