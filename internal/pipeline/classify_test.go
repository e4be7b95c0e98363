package pipeline

import (
	"testing"

	"github.com/fdsmon/shiftrep/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		trigger string
		want    model.Category
	}{
		{"Space: disk space is critically low", model.CategorySpace},
		{"Windows: High memory utilization", model.CategoryMemory},
		{"CPU Temp: Temperature is above warning threshold", model.CategoryTemperature},
		{"Interface down", model.CategoryOther},
		{"", model.CategoryOther},
		// Priority order: first rule wins when multiple match.
		{"Space low, memory high", model.CategorySpace},
		{"memory and Temperature both", model.CategoryMemory},
		// Matching is case-sensitive; this mirrors the vendor's fixed
		// trigger vocabulary and must not be normalized.
		{"space is low", model.CategoryOther},
		{"Memory pressure", model.CategoryOther},
		{"temperature rising", model.CategoryOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.trigger); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.trigger, got, tt.want)
		}
	}
}

func TestFollowUp(t *testing.T) {
	tests := []struct {
		ms   int64
		want bool
	}{
		{86_399_999, false},
		{86_400_000, true}, // boundary is inclusive on the follow-up side
		{86_400_001, true},
		{3_600_000, false},
	}

	for _, tt := range tests {
		if got := FollowUp(tt.ms); got != tt.want {
			t.Errorf("FollowUp(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}
