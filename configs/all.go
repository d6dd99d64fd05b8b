package configs

import (
	"fmt"
	"iter"
)

// All decodes the value at path from every config root that defines it, in root order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if err := value.Decode(&v); err != nil {
				yield(v, fmt.Errorf("decode %s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
