package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
	Detail      string `json:"detail,omitempty"`
}

// MitraMetrics is returned by GET /api/mitra/metrics.
type MitraMetrics struct {
	TotalReplies int64            `json:"total_replies"`
	BySource     map[string]int64 `json:"by_source"`
	FallbackRate float64          `json:"fallback_rate"`
	ErrorRate    float64          `json:"error_rate"`
	CacheHitRate float64          `json:"cache_hit_rate"`
	Period       string           `json:"period"`
}

// ============================================================
// Generic API Response wrappers
// ============================================================

// ItemsResponse wraps list results as {"items": [...]}.
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	User *User `json:"user"`
}

// PostCreated is returned by POST /api/feed.
type PostCreated struct {
	Post *Post `json:"post"`
	OK   bool  `json:"ok"`
}

// AchievementCreated is returned by POST /api/profile/achievements.
type AchievementCreated struct {
	Achievement *Achievement `json:"achievement"`
	OK          bool         `json:"ok"`
}
