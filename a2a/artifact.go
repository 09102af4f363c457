package a2a

import "github.com/google/uuid"

// Artifact is a named, ordered sequence of Parts produced by a task
// (spec §3 "Artifact").
type Artifact struct {
	ArtifactID  string                 `json:"artifactId"`
	Name        string                 `json:"name"`
	Parts       []Part                 `json:"parts"`
	Description string                 `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// NewArtifact builds an Artifact with a fresh artifact id.
func NewArtifact(name string, parts []Part) Artifact {
	return Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      parts,
	}
}
