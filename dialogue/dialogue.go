// Package dialogue loads scripted dialogue sequences and estimates their
// playout duration. Text streaming and portrait UI live outside the core;
// callers schedule their own timers from the estimate instead of polling.
package dialogue

import (
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/riptide/prefabs"
)

const (
	// DefaultTypingRate is seconds per character.
	DefaultTypingRate = 0.04
	// DefaultPerLineDelay is the pause appended after each line.
	DefaultPerLineDelay = 0.6
)

// Source holds the compiled dialogue sequences.
type Source struct {
	sequences map[string][]string

	TypingRate   float64
	PerLineDelay float64

	active string
}

// NewSource compiles the dialogue script and extracts its sequences.
func NewSource() (*Source, error) {
	return NewSourceFromScript("dialogue.tengo")
}

func NewSourceFromScript(name string) (*Source, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("dialogue: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("dialogue: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("dialogue: run %s: %w", name, err)
	}

	raw := compiled.Get("sequences")
	if raw == nil || raw.IsUndefined() {
		return nil, fmt.Errorf("dialogue: script %s defines no sequences", name)
	}

	sequences := make(map[string][]string)
	for id, value := range raw.Map() {
		entries, ok := value.([]any)
		if !ok {
			continue
		}
		lines := make([]string, 0, len(entries))
		for _, entry := range entries {
			if line, ok := entry.(string); ok {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			sequences[id] = lines
		}
	}
	if len(sequences) == 0 {
		return nil, fmt.Errorf("dialogue: script %s has no usable sequences", name)
	}

	return &Source{
		sequences:    sequences,
		TypingRate:   DefaultTypingRate,
		PerLineDelay: DefaultPerLineDelay,
	}, nil
}

// Lines returns the ordered lines for a sequence, nil if unknown.
func (s *Source) Lines(id string) []string {
	if s == nil {
		return nil
	}
	lines := s.sequences[id]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Sequences returns all known sequence ids, sorted.
func (s *Source) Sequences() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.sequences))
	for id := range s.sequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EstimateDuration returns the expected playout time for a sequence.
func (s *Source) EstimateDuration(id string) float64 {
	if s == nil {
		return 0
	}
	lines, ok := s.sequences[id]
	if !ok {
		return 0
	}
	total := 0.0
	for _, line := range lines {
		total += float64(len(line)) * s.TypingRate
	}
	return total + s.PerLineDelay*float64(len(lines))
}

// Start marks a sequence as playing and returns its estimated duration.
// Returns false while another sequence is still active.
func (s *Source) Start(id string) (float64, bool) {
	if s == nil || s.active != "" {
		return 0, false
	}
	if _, ok := s.sequences[id]; !ok {
		return 0, false
	}
	s.active = id
	return s.EstimateDuration(id), true
}

// Active returns the currently playing sequence id, empty if none.
func (s *Source) Active() string {
	if s == nil {
		return ""
	}
	return s.active
}

// Finish clears the active sequence.
func (s *Source) Finish() {
	if s != nil {
		s.active = ""
	}
}
