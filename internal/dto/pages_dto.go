package dto

type RouteInfo struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
}

type RouteManifestResponse struct {
	Routes   []RouteInfo `json:"routes"`
	Fallback string      `json:"fallback"`
}
