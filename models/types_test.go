// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestEnumValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) bool
		valid []string
		bad   []string
	}{
		{
			name:  "domain",
			fn:    ValidDomain,
			valid: []string{"Archaea", "Bacteria", "Eukarya"},
			bad:   []string{"Virus", "archaea", "", "Prokaryote"},
		},
		{
			name:  "location type",
			fn:    ValidLocationType,
			valid: []string{"Natural", "Artificial"},
			bad:   []string{"natural", "Synthetic", ""},
		},
		{
			name:  "climate type",
			fn:    ValidClimateType,
			valid: []string{"Tropical", "Arid", "Temperate", "Cold", "Polar"},
			bad:   []string{"Volcanic", "temperate", ""},
		},
		{
			name:  "project status",
			fn:    ValidStatus,
			valid: []string{"Ongoing", "Completed", "Cancelled", "On Hold"},
			bad:   []string{"Paused", "ongoing", "OnHold", ""},
		},
		{
			name:  "energy source",
			fn:    ValidEnergySource,
			valid: []string{"Organotroph", "Chemoautotroph", "Heterotroph"},
			bad:   []string{"Phototroph", "heterotroph", ""},
		},
		{
			name:  "metabolism",
			fn:    ValidMetabolism,
			valid: []string{"Methanotroph", "Autotroph", "Respiratory", "Fermentative"},
			bad:   []string{"Photosynthetic", "respiratory", ""},
		},
		{
			name:  "oxygen requirement",
			fn:    ValidOxygenRequirement,
			valid: []string{"Aerobic", "Anaerobic", "Facultative Anaerobic"},
			bad:   []string{"Microaerophilic", "aerobic", "Facultative", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				if !tt.fn(v) {
					t.Errorf("Expected %q to be valid", v)
				}
			}
			for _, b := range tt.bad {
				if tt.fn(b) {
					t.Errorf("Expected %q to be rejected", b)
				}
			}
		})
	}
}
