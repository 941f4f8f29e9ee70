package ports

import "time"

type WorldMetrics interface {
	RecordGeneration(chunks, stairs int, reloaded bool, took time.Duration)
	RecordGenerationFailure()
	RecordStream(activated, deactivated int)
	RecordLookup(kind string, found bool)
}
