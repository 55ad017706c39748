package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"latest AI news", News},
		{"breaking developments in fusion energy", News},
		{"how to start a podcast", HowTo},
		{"tutorial for sourdough bread", HowTo},
		{"coffee shops near me", Local},
		{"best pizza nearby", Local},
		{"research on sleep deprivation", Research},
		{"python versus go comparison", Research},
		{"what is quantum computing", Factual},
		{"who invented the telephone", Factual},
		{"best mechanical keyboards", General},
		{"", General},
		{"   ", General},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// Priority order matters: queries matching several indicator tables must
// resolve to the earliest one checked.
func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"news beats howto", "latest guide to smart homes", News},
		{"news beats factual pattern", "what is the latest on the election", News},
		{"howto beats research", "how to read a research paper", HowTo},
		{"local beats research", "local studies of air quality", Local},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	queries := []string{"latest AI news", "how to cook rice", "what is gravity", "anything else"}
	for _, q := range queries {
		first := Classify(q)
		for i := 0; i < 5; i++ {
			if got := Classify(q); got != first {
				t.Fatalf("Classify(%q) not deterministic: %v then %v", q, first, got)
			}
		}
	}
}

func TestOptimize(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		intent Intent
		want   string
	}{
		{"news gains prefix", "AI regulation", News, "latest AI regulation"},
		{"news keeps existing prefix", "latest AI regulation", News, "latest AI regulation"},
		{"howto gains prefix", "tune a guitar", HowTo, "how to tune a guitar"},
		{"howto keeps existing prefix", "how to tune a guitar", HowTo, "how to tune a guitar"},
		{"research gains suffix", "sleep deprivation", Research, "sleep deprivation research study analysis"},
		{"factual unchanged", "what is gravity", Factual, "what is gravity"},
		{"general unchanged", "mechanical keyboards", General, "mechanical keyboards"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Optimize(tt.query, tt.intent); got != tt.want {
				t.Errorf("Optimize(%q, %v) = %q, want %q", tt.query, tt.intent, got, tt.want)
			}
		})
	}
}
