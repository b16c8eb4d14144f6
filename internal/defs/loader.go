// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadAntDefinitions reads an ant configuration file and populates the
// AntDefs library. The catalog order follows the file order.
func LoadAntDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ant definitions file: %w", err)
	}

	var antDefs []AntDefinition
	if err := json.Unmarshal(file, &antDefs); err != nil {
		return fmt.Errorf("failed to unmarshal ant definitions: %w", err)
	}

	AntDefs = make(map[string]AntDefinition)
	AntCatalog = nil
	for _, def := range antDefs {
		AntDefs[def.ID] = def
		AntCatalog = append(AntCatalog, def.ID)
	}

	fmt.Printf("Loaded %d ant definitions\n", len(AntDefs))
	return nil
}

// LoadHivePlan reads a hive configuration file and returns the plan.
func LoadHivePlan(path string) (HivePlan, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return HivePlan{}, fmt.Errorf("failed to read hive plan file: %w", err)
	}

	var plan HivePlan
	if err := json.Unmarshal(file, &plan); err != nil {
		return HivePlan{}, fmt.Errorf("failed to unmarshal hive plan: %w", err)
	}
	return plan, nil
}
