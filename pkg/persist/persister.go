package persist

// Persister handles I/O for a specific result type using a Codec.
type Persister[T any] struct {
	basename string
	codec    Codec
}

// NewPersister creates a persister with the given basename and codec.
func NewPersister[T any](basename string, codec Codec) *Persister[T] {
	return &Persister[T]{
		basename: basename,
		codec:    codec,
	}
}

// Save writes the result to the given directory.
func (p *Persister[T]) Save(dir string, result *T) error {
	return SaveResult(dir, p.basename, p.codec, result)
}

// Load reads a previously saved result from the given directory.
func (p *Persister[T]) Load(dir string) (*T, error) {
	var result T

	err := LoadResult(dir, p.basename, p.codec, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
