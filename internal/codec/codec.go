// Package codec serializes group collections and export envelopes to JSON
// and back. The wire shape is stable: field names are fixed, array order is
// preserved, and optional fields (Positions, Slot) are absent rather than
// null so a group without a layout blob round-trips without inventing one.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danieljhkim/tabgroups/internal/group"
)

// ErrParse indicates the stored text is not a recognizable group collection
// or envelope. The registry treats it as a backend-read failure and falls
// back to an empty collection.
var ErrParse = errors.New("unrecognized group data")

// groupJSON is the wire form of a group. Positions is base64-encoded by
// encoding/json; a nil blob is omitted entirely.
type groupJSON struct {
	Name        string   `json:"Name"`
	Description string   `json:"Description,omitempty"`
	Files       []string `json:"Files,omitempty"`
	Positions   []byte   `json:"Positions,omitempty"`
	Slot        *int     `json:"Slot,omitempty"`
}

// envelopeJSON is the wire form of an export envelope.
type envelopeJSON struct {
	SolutionName string      `json:"SolutionName"`
	Groups       []groupJSON `json:"Groups"`
}

// Envelope pairs a workspace key with its group collection. It is the unit
// exchanged with export files and inter-workspace import.
type Envelope struct {
	WorkspaceKey string
	Groups       []*group.Group
}

func toWire(groups []*group.Group) []groupJSON {
	wire := make([]groupJSON, len(groups))
	for i, g := range groups {
		wire[i] = groupJSON{
			Name:        g.Name,
			Description: g.Description,
			Files:       g.Files,
			Positions:   g.Positions,
			Slot:        g.Slot,
		}
	}
	return wire
}

func fromWire(wire []groupJSON) []*group.Group {
	groups := make([]*group.Group, len(wire))
	for i, w := range wire {
		g := group.New(w.Name)
		g.Description = w.Description
		g.Files = w.Files
		g.Positions = w.Positions
		g.Slot = w.Slot
		groups[i] = g
	}
	return groups
}

// EncodeGroups serializes a collection in display order.
func EncodeGroups(groups []*group.Group) ([]byte, error) {
	data, err := json.Marshal(toWire(groups))
	if err != nil {
		return nil, fmt.Errorf("failed to encode groups: %w", err)
	}
	return data, nil
}

// DecodeGroups deserializes a collection, reconstructing each group's Kind
// from its name.
func DecodeGroups(data []byte) ([]*group.Group, error) {
	var wire []groupJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fromWire(wire), nil
}

// EncodeEnvelope serializes an export envelope, indented for the benefit of
// users inspecting exported files.
func EncodeEnvelope(env *Envelope) ([]byte, error) {
	wire := envelopeJSON{
		SolutionName: env.WorkspaceKey,
		Groups:       toWire(env.Groups),
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope deserializes an export envelope. Truncated or foreign data
// yields ErrParse, never a partial envelope.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var wire envelopeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Envelope{
		WorkspaceKey: wire.SolutionName,
		Groups:       fromWire(wire.Groups),
	}, nil
}
