// Package a2a implements the A2A semantic layer: the Message/Part/
// Task/Artifact/AgentCard model that sits above MXP frames and is
// losslessly mappable onto them (see package bridge).
package a2a

// Role identifies who authored a Message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)
