// Package entity defines the domain entities of the chainfilter feature.
package entity

// Business is the minimal view of a lead the chain filter needs.
type Business struct {
	Name    string
	Address string
}

// Decision is the model's verdict for one batch. Indices are 1-based within
// the batch, matching the numbered list in the prompt.
type Decision struct {
	Remove []int `json:"remove"`
	Keep   []int `json:"keep"`
}
