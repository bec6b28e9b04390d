package engine

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// rawRequest splits the document so each section can be decoded on its own
// and decoding failures can be attributed to the right section.
type rawRequest struct {
	Farm      json.RawMessage `json:"farm"`
	Financial json.RawMessage `json:"financial"`
	Aerators  json.RawMessage `json:"aerators"`
}

// ParseRequest decodes a JSON comparison request. Non-numeric values yield
// the section-specific validation error rather than a raw decode error.
func ParseRequest(data []byte) (*ComparisonRequest, error) {
	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	req := &ComparisonRequest{}
	if len(raw.Farm) > 0 {
		req.Farm = &FarmInput{}
		if err := json.Unmarshal(raw.Farm, req.Farm); err != nil {
			return nil, ErrInvalidFarmValue
		}
	}
	if len(raw.Financial) > 0 {
		req.Financial = &FinancialInput{}
		if err := json.Unmarshal(raw.Financial, req.Financial); err != nil {
			return nil, ErrInvalidFinancialValue
		}
	}
	if len(raw.Aerators) > 0 {
		if err := json.Unmarshal(raw.Aerators, &req.Aerators); err != nil {
			return nil, ErrInvalidAeratorValue
		}
	}
	return req, nil
}

// ParseRequestYAML decodes a YAML scenario file into a comparison request.
// Scenario files use the same section and field names as the JSON contract.
func ParseRequestYAML(data []byte) (*ComparisonRequest, error) {
	var doc struct {
		Farm      yaml.Node `yaml:"farm"`
		Financial yaml.Node `yaml:"financial"`
		Aerators  yaml.Node `yaml:"aerators"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	req := &ComparisonRequest{}
	if doc.Farm.Kind != 0 {
		req.Farm = &FarmInput{}
		if err := doc.Farm.Decode(req.Farm); err != nil {
			return nil, ErrInvalidFarmValue
		}
	}
	if doc.Financial.Kind != 0 {
		req.Financial = &FinancialInput{}
		if err := doc.Financial.Decode(req.Financial); err != nil {
			return nil, ErrInvalidFinancialValue
		}
	}
	if doc.Aerators.Kind != 0 {
		if err := doc.Aerators.Decode(&req.Aerators); err != nil {
			return nil, ErrInvalidAeratorValue
		}
	}
	return req, nil
}
