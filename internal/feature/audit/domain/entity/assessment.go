// Package entity defines the domain entities of the audit feature.
package entity

import "time"

// Design judgments.
const (
	JudgmentModern   = "Modern"
	JudgmentOutdated = "Outdated"
	JudgmentUnclear  = "Unclear"
)

// Assessment is the model's verdict on a website's design.
type Assessment struct {
	Judgment   string `json:"judgment"`
	Reason     string `json:"reason"`
	Confidence int    `json:"confidence"`
}

// AuditResult is the outcome of auditing one website.
type AuditResult struct {
	URL             string
	Timestamp       time.Time
	Judgment        string
	Reason          string
	Confidence      int
	ScreenshotTaken bool
	ScreenshotPath  string
}
