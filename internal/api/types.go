package api

// InstallResponse is returned by POST /api/install.
type InstallResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	Output      string   `json:"output,omitempty"`
	Error       string   `json:"error,omitempty"`
	EntityInfo  string   `json:"entity_info,omitempty"`
	EntityCount int      `json:"entity_count"`
	Entities    []string `json:"entities,omitempty"`
}

// RemoveRequest selects what to remove. Confirm must be true, and either
// RemoveAll or a non-empty Packs list is required; otherwise the request is
// rejected before the remove script is ever invoked.
type RemoveRequest struct {
	RemoveAll bool     `json:"remove_all,omitempty"`
	Packs     []string `json:"packs,omitempty"`
	Confirm   bool     `json:"confirm"`
}

// RemoveResponse is returned by POST /api/remove.
type RemoveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResponse carries the rendered inventory report. Packs duplicates
// Output; older clients read one key, newer ones the other.
type ListResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Packs   string `json:"packs,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
