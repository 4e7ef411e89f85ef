package ai

import (
	"github.com/vovakirdan/tui-quarto/internal/registry"
	"github.com/vovakirdan/tui-quarto/internal/search"
)

func init() {
	for _, name := range search.Names() {
		algo, err := search.ByName(name)
		if err != nil {
			panic(err)
		}
		registry.Register(name, func(o registry.Options) registry.Agent {
			return New(algo, WithDepth(o.Depth), WithLogger(o.Logger))
		})
	}

	registry.Register("random", func(o registry.Options) registry.Agent {
		return NewRandom(o.Seed)
	})
}
