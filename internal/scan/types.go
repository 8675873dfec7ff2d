package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/classify"
	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/notify"
)

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageInventory Stage = "inventory"
	StageArtifact  Stage = "artifact"
	StageNotify    Stage = "notify"
)

// StatusSuccess is the only status a completed run reports.
const StatusSuccess = "success"

// StageError wraps a failure with the stage and, for inventory reads, the
// resource type whose listing failed.
type StageError struct {
	Stage        Stage
	ResourceType inventory.ResourceType
	Err          error
}

func (e *StageError) Error() string {
	if e.ResourceType != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.ResourceType, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ArtifactStore persists a rendered report under a name. Putting the same
// name twice replaces the earlier content.
type ArtifactStore interface {
	Put(ctx context.Context, name string, data []byte) error
	Location(name string) string
}

// Deps are the collaborators a run talks to.
type Deps struct {
	Provider inventory.Provider
	Store    ArtifactStore
	Notifier notify.Notifier
	Now      func() time.Time             // defaults to time.Now
	Progress func(inventory.ScanProgress) // optional
}

// Options control classification and output naming.
type Options struct {
	Rules          classify.Rules
	Currency       string
	ArtifactPrefix string
	Region         string
	ExcludeIDs     map[string]bool
}

// Result is the outcome of a successful run.
type Result struct {
	Status          string          `json:"status"`
	ResourcesFound  int             `json:"resources_found"`
	EstimatedSaving float64         `json:"estimated_saving"`
	Artifact        string          `json:"artifact"`
	Report          analyzer.Report `json:"-"`
	Errors          []string        `json:"errors,omitempty"`
}
