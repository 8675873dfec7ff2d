package report

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

const sarifSchema = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"

// sarifReport is the top-level SARIF v2.1.0 structure.
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string            `json:"id"`
	ShortDescription sarifMessage      `json:"shortDescription"`
	DefaultConfig    sarifDefaultLevel `json:"defaultConfiguration"`
}

type sarifDefaultLevel struct {
	Level string `json:"level"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string         `json:"ruleId"`
	Level     string         `json:"level"`
	Message   sarifMessage   `json:"message"`
	Locations []sarifLoc     `json:"locations,omitempty"`
	Props     map[string]any `json:"properties,omitempty"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

// Generate writes SARIF v2.1.0 output.
func (r *SARIFReporter) Generate(data Data) error {
	rules := buildSARIFRules()
	results := make([]sarifResult, 0, len(data.Findings))

	for _, f := range data.Findings {
		results = append(results, sarifResult{
			RuleID:  string(f.ResourceType),
			Level:   sarifLevel(f),
			Message: sarifMessage{Text: fmt.Sprintf("%s %s: %s", f.ResourceType, f.Reason, f.ResourceID)},
			Locations: []sarifLoc{
				{
					PhysicalLocation: sarifPhysical{
						ArtifactLocation: sarifArtifact{
							URI: fmt.Sprintf("cloud://%s/%s/%s", data.Config.Region, f.ResourceType, f.ResourceID),
						},
					},
				},
			},
			Props: map[string]any{
				"reason":               f.Reason,
				"estimatedMonthlyCost": f.EstimatedMonthlyCost,
			},
		})
	}

	report := sarifReport{
		Schema:  sarifSchema,
		Version: "2.1.0",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:    data.Tool,
						Version: data.Version,
						Rules:   rules,
					},
				},
				Results: results,
			},
		},
	}

	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode SARIF report: %w", err)
	}
	return nil
}

// sarifLevel marks findings that cost money as warnings; the rest are notes.
func sarifLevel(f inventory.Finding) string {
	if f.EstimatedMonthlyCost > 0 {
		return "warning"
	}
	return "note"
}

var ruleDescriptions = map[inventory.ResourceType]string{
	inventory.ResourceComputeInstance: "Stopped compute instance",
	inventory.ResourceVolume:          "Unattached block volume",
	inventory.ResourceFloatingIP:      "Unassociated floating IP",
	inventory.ResourceSecurityGroup:   "Unreferenced security group",
	inventory.ResourceLoadBalancer:    "Load balancer without target groups",
	inventory.ResourceManagedDatabase: "Stopped managed database",
}

func buildSARIFRules() []sarifRule {
	rules := make([]sarifRule, 0, len(inventory.ResourceTypes))
	for _, rt := range inventory.ResourceTypes {
		rules = append(rules, sarifRule{
			ID:               string(rt),
			ShortDescription: sarifMessage{Text: ruleDescriptions[rt]},
			DefaultConfig:    sarifDefaultLevel{Level: "warning"},
		})
	}
	return rules
}
