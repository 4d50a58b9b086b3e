package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const dataFile = "data/data.json"

type Product struct {
	ID          int    `json:"id"`
	LaptopName  string `json:"laptopName"`
	Image       string `json:"image"`
	CPU         string `json:"cpu"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	Screen      string `json:"screen"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Store is never mutated after construction.
type Store struct {
	products []Product
}

func NewStore(products []Product) *Store {
	out := make([]Product, len(products))
	copy(out, products)
	return &Store{products: out}
}

func LoadStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products %s: %w", path, err)
	}
	if products == nil {
		return nil, fmt.Errorf("decode products %s: expected a JSON array", path)
	}

	return &Store{products: products}, nil
}

// DefaultDataPath resolves data/data.json next to the running executable.
func DefaultDataPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), dataFile), nil
}

func (s *Store) Len() int { return len(s.products) }

func (s *Store) Get(i int) (Product, bool) {
	if i < 0 || i >= len(s.products) {
		return Product{}, false
	}
	return s.products[i], true
}
