package biome

import "biomegen/pkg/core"

// Rand is the random source generation draws from.
type Rand = core.Rand
