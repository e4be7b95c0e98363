package pipeline

import (
	"strings"

	"github.com/fdsmon/shiftrep/internal/model"
)

// followUpMs is the inclusive threshold separating follow-up events
// (running for a day or more) from the current shift's events.
const followUpMs = 86_400_000

// rules are evaluated top to bottom; the first match wins, so a trigger
// mentioning both disk space and memory lands in Space. The mixed casing
// ("Space" and "Temperature" capitalized, "memory" not) matches the vendor's
// fixed trigger-name strings and must not be normalized: case-insensitive
// matching would silently reclassify real data.
var rules = []struct {
	substr   string
	category model.Category
}{
	{"Space", model.CategorySpace},
	{"memory", model.CategoryMemory},
	{"Temperature", model.CategoryTemperature},
}

// Classify assigns a category to a free-text trigger description.
// Classification is total: anything unmatched is Other.
func Classify(trigger string) model.Category {
	for _, r := range rules {
		if strings.Contains(trigger, r.substr) {
			return r.category
		}
	}
	return model.CategoryOther
}

// FollowUp reports whether an event duration puts it in the follow-up
// bucket. The boundary is inclusive: exactly 24h is follow-up.
func FollowUp(durationMs int64) bool {
	return durationMs >= followUpMs
}
