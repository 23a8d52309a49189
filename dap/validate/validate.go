// Package validate optionally checks opaque request arguments and custom
// event/response bodies against a JSON Schema registered per command or
// event name. The protocol itself places almost no constraints on these
// payloads (Source.adapterData, Launch/Attach/Restart's arguments, custom
// commands) — a backend that wants stronger guarantees registers a schema
// and the reactor drops any inbound request whose arguments do not conform
// before it reaches the backend.
package validate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry holds compiled schemas keyed by command or event name. The zero
// value is not usable; construct with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewRegistry returns an empty Registry. Commands with no registered
// schema pass validation unconditionally.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*jsonschema.Schema)}
}

// Register compiles schemaJSON and associates it with name (a DAP command
// or event name, e.g. "launch" or "customAddBreakpoint"). A later call
// with the same name replaces the previous schema.
func (r *Registry) Register(name string, schemaJSON []byte) error {
	var doc any
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return fmt.Errorf("validate: unmarshal schema for %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	resource := "dap-reactor://" + name + ".json"
	if err := c.AddResource(resource, doc); err != nil {
		return fmt.Errorf("validate: add schema resource for %q: %w", name, err)
	}
	schema, err := c.Compile(resource)
	if err != nil {
		return fmt.Errorf("validate: compile schema for %q: %w", name, err)
	}

	r.mu.Lock()
	r.schemas[name] = schema
	r.mu.Unlock()
	return nil
}

// Validate checks payload against the schema registered for name. It
// returns nil immediately when no schema is registered — validation is
// opt-in per command.
func (r *Registry) Validate(name string, payload json.RawMessage) error {
	r.mu.RLock()
	schema, ok := r.schemas[name]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	var doc any
	if len(payload) == 0 {
		doc = map[string]any{}
	} else if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("validate: unmarshal payload for %q: %w", name, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validate: %q failed schema: %w", name, err)
	}
	return nil
}
