// Package entity defines the domain entities of the background feature.
package entity

import (
	"encoding/json"
	"strings"
)

// FlexStrings decodes a JSON value that models return either as an array of
// strings or as a single string.
type FlexStrings []string

// UnmarshalJSON accepts `["a","b"]`, `"a"` and null.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*f = nil
	} else {
		*f = []string{single}
	}
	return nil
}

// LogoProfile is the visual identity extracted from a company logo.
type LogoProfile struct {
	PrimaryColors    FlexStrings `json:"primary_colors"`
	SecondaryColors  FlexStrings `json:"secondary_colors"`
	DesignStyle      string      `json:"design_style"`
	Industry         string      `json:"industry"`
	BrandPersonality string      `json:"brand_personality"`
	VisualElements   FlexStrings `json:"visual_elements"`
}

// DefaultLogoProfile is the fallback when logo analysis fails.
func DefaultLogoProfile() LogoProfile {
	return LogoProfile{
		PrimaryColors:    FlexStrings{"#2E86AB", "#A23B72"},
		SecondaryColors:  FlexStrings{"#F18F01", "#C73E1D"},
		DesignStyle:      "modern",
		Industry:         "technology",
		BrandPersonality: "professional",
		VisualElements:   FlexStrings{"geometric"},
	}
}

// GeneratedBackground is one produced hero image with the prompt that made it.
type GeneratedBackground struct {
	Prompt   string
	Image    []byte
	MIMEType string
}
