package plan

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON encodes the plan as indented JSON. This is the default output
// surface: external generators and installers read the same document.
func WriteJSON(w io.Writer, p *BuildPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode build plan: %w", err)
	}
	return nil
}
