package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"trace", zerolog.TraceLevel, true},
		{"off", zerolog.Disabled, true},
		{"disabled", zerolog.Disabled, true},
		{"", zerolog.Disabled, false},
		{"verbose", zerolog.Disabled, false},
	}

	for _, tc := range tests {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
		ok   bool
	}{
		{"1", true, true},
		{"true", true, true},
		{"0", false, true},
		{"false", false, true},
		{"", false, false},
		{"yes", false, false},
	}

	for _, tc := range tests {
		got, ok := parseBool(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseBool(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	if !SetLevel("debug") {
		t.Error("SetLevel(debug) = false, want true")
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level = %v, want debug", zerolog.GlobalLevel())
	}

	if SetLevel("bogus") {
		t.Error("SetLevel(bogus) = true, want false")
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level changed on bad input: %v", zerolog.GlobalLevel())
	}
}
