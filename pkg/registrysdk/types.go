package registrysdk

// ClientRequest is the body of create and update calls.
type ClientRequest struct {
	Name         string `json:"name"`
	DownloadLink string `json:"downloadLink"`
}

// ClientRecord is the name/link pair returned by create and update.
type ClientRecord struct {
	Name         string `json:"name"`
	DownloadLink string `json:"downloadLink"`
}

// ClientInfo is a registered client annotated with its registry key. The key
// is assigned at creation (the trimmed name) and never changes, so ID and
// Name diverge once a client has been renamed.
type ClientInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DownloadLink string `json:"downloadLink"`
}

// ErrorResponse is the error body for every non-2xx response. Message is
// only populated on 500s, carrying the underlying error text.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Store string `json:"store"`
}
