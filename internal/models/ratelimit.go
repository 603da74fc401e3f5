package models

import "time"

// * RateLimitSnapshot is the quota state of one GitHub resource category
type RateLimitSnapshot struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Used      int   `json:"used"`
	Reset     int64 `json:"reset"`
}

func (r RateLimitSnapshot) ResetTime() time.Time {
	return time.Unix(r.Reset, 0)
}

type RateLimits struct {
	Core                RateLimitSnapshot  `json:"core"`
	Search              RateLimitSnapshot  `json:"search"`
	GraphQL             *RateLimitSnapshot `json:"graphql,omitempty"`
	IntegrationManifest *RateLimitSnapshot `json:"integration_manifest,omitempty"`
}

type TokenStatus struct {
	HasToken bool               `json:"has_token"`
	Valid    bool               `json:"valid"`
	Login    string             `json:"login,omitempty"`
	Scopes   []string           `json:"scopes"`
	Rate     *RateLimitSnapshot `json:"rate,omitempty"`
	Error    string             `json:"error,omitempty"`
}
