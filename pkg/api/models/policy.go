package models

// PolicyRequest mirrors one row of the tabular policy source. The type field
// accepts both the serialized token form ("PolicyType.Reachability") and the
// bare member name ("Reachability"). Destinations is a brace-delimited,
// comma-space separated list of canonical destination strings.
type PolicyRequest struct {
	Type         string `json:"type" binding:"required"`
	Source       string `json:"source" binding:"required"`
	Destinations string `json:"destinations" binding:"required"`
	Specifics    string `json:"specifics"`
}

// DestinationResponse represents one destination triple in API responses
type DestinationResponse struct {
	Router    string `json:"router"`
	Interface string `json:"interface"`
	Subnet    string `json:"subnet"`
}

// PolicyResponse represents a policy in API responses. ID is the hash of the
// canonical rendering and identifies the policy in GET/DELETE URLs.
type PolicyResponse struct {
	ID           string                `json:"id"`
	Kind         string                `json:"kind"`
	Sources      []string              `json:"sources"`
	Destinations []DestinationResponse `json:"destinations"`
	Negate       bool                  `json:"negate"`
	Coverage     int                   `json:"coverage"`
	Rendering    string                `json:"rendering"`
	Waypoints    string                `json:"waypoints,omitempty"`
	NumPaths     int                   `json:"num_paths,omitempty"`
}

// PolicyListResponse represents a list of policies
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
	Count    int              `json:"count"`
}
