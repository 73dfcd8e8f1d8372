// Package entity defines the domain models for the logofinder feature.
package entity

// Box is an element's bounding box on a rendered page, top-left origin.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ImageCandidate is one discovered image element that may be the site's logo.
// SourceURL is the identity key: the first candidate seen for a URL wins and
// later duplicates are dropped, not merged.
type ImageCandidate struct {
	SourceURL       string  // absolute URL, resolved against the page base
	AltText         string  // alt attribute, may be empty
	CSSClass        string  // class attribute, may be empty
	ElementID       string  // id attribute, may be empty
	Width           float64 // rendered width in px, 0 if unavailable
	Height          float64 // rendered height in px, 0 if unavailable
	Position        Box     // zero box when the renderer reports none
	MatchedSelector string  // discovery rule that produced this candidate (diagnostics only)
}
