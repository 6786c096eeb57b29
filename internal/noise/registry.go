package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Factory constructs a seeded noise source ready to pass to Bind.
type Factory func(seed int64) any

var sources = map[string]Factory{}

// Register adds a noise source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available noise source factories.
func Sources() map[string]Factory {
	return sources
}

func init() {
	Register("perlin", func(seed int64) any {
		return perlin.NewPerlin(2, 2, 3, seed)
	})
	Register("simplex", func(seed int64) any {
		return opensimplex.New(seed)
	})
}
