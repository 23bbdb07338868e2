package domain

import "time"

// Audience is the product of one filter invocation: the matching
// customers in original table order plus descriptive statistics. It is
// held per session until replaced by the next invocation.
type Audience struct {
	Criteria    AudienceCriteria `json:"criteria"`
	Customers   []Customer       `json:"customers"`
	Stats       AudienceStats    `json:"stats"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// AudienceStats summarizes an audience. When the audience is empty all
// means are reported as zero; Count distinguishes "mean is zero" from
// "no rows".
type AudienceStats struct {
	Count        int     `json:"count"`
	MeanBalance  float64 `json:"mean_balance"`
	MeanProducts float64 `json:"mean_products"`
	MeanAge      float64 `json:"mean_age"`
}
