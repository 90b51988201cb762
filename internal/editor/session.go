package editor

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Project is the in-memory identity created by the New Project action.
// It never touches disk.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Session holds the display state behind the window: the selected tool, the
// current project, and the last value of every slider. Slider callbacks run
// on the UI thread but logging hooks may not, so access is mutex guarded.
type Session struct {
	mu          sync.RWMutex
	currentTool Tool
	project     *Project
	adjustments map[string]float64
	channels    map[string]int
}

// NewSession creates a session with every slider at its default value and
// no tool selected.
func NewSession() *Session {
	s := &Session{
		adjustments: make(map[string]float64),
		channels:    make(map[string]int),
	}
	for _, spec := range Adjustments() {
		s.adjustments[spec.Key] = spec.Default
	}
	for _, spec := range MixerChannels() {
		s.channels[spec.Key] = int(spec.Default)
	}
	return s
}

// SelectTool records a tool as the current selection.
func (s *Session) SelectTool(tool Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTool = tool
}

// CurrentTool returns the selected tool, or false before the first selection.
func (s *Session) CurrentTool() (Tool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTool, s.currentTool != ""
}

// NewProject replaces the current project with a fresh untitled one.
func (s *Session) NewProject() Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	project := Project{
		ID:        uuid.NewString(),
		Name:      "Untitled Project",
		CreatedAt: time.Now(),
	}
	s.project = &project
	return project
}

// Project returns the current project, or false if none was created.
func (s *Session) Project() (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.project == nil {
		return Project{}, false
	}
	return *s.project, true
}

// SetAdjustment stores an adjustment slider value.
func (s *Session) SetAdjustment(key string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adjustments[key]; !ok {
		return fmt.Errorf("unknown adjustment %q", key)
	}
	s.adjustments[key] = value
	return nil
}

// Adjustment returns the stored value for an adjustment key.
func (s *Session) Adjustment(key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.adjustments[key]
	return value, ok
}

// SetChannel stores a color mixer slider value.
func (s *Session) SetChannel(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[key]; !ok {
		return fmt.Errorf("unknown channel %q", key)
	}
	s.channels[key] = value
	return nil
}

// Channel returns the stored value for a mixer key.
func (s *Session) Channel(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.channels[key]
	return value, ok
}
