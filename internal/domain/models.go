package domain

import "time"

// ============================================================
// Perfil do usuário
// ============================================================

// User is the single learner record the demo app is built around.
type User struct {
	UserID       string        `json:"user_id"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Region       string        `json:"region"`
	DVI          int           `json:"dvi"`
	Band         string        `json:"band"`
	Headline     string        `json:"headline"`
	About        string        `json:"about"`
	Skills       []string      `json:"skills"`
	Achievements []Achievement `json:"achievements"`
}

// Achievement is a milestone on the user's profile.
type Achievement struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// ProfileUser is the public projection of User served by GET /api/profile.
type ProfileUser struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Region   string   `json:"region"`
	DVI      int      `json:"dvi"`
	Band     string   `json:"band"`
	Headline string   `json:"headline"`
	About    string   `json:"about"`
	Skills   []string `json:"skills"`
}

// Profile aggregates the user, their achievements and notifications.
type Profile struct {
	User          ProfileUser    `json:"user"`
	Achievements  []Achievement  `json:"achievements"`
	Notifications []Notification `json:"notifications"`
}

// Notification is an inbox item shown on the profile screen.
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================
// Feed
// ============================================================

// Post is a social feed entry.
type Post struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	DVI         int       `json:"dvi"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	LikeCount   int       `json:"like_count"`
}

// ============================================================
// Manifesto & Mitra
// ============================================================

type Manifesto struct {
	Hero    ManifestoHero `json:"hero"`
	Pillars []Pillar      `json:"pillars"`
	Voices  []Voice       `json:"voices"`
}

type ManifestoHero struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type Pillar struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Voice struct {
	UserID string `json:"user_id"`
	Quote  string `json:"quote"`
}

// MitraTips feeds the assistant side panel.
type MitraTips struct {
	Tips    []string `json:"tips"`
	Prompts []string `json:"prompts"`
}

// ============================================================
// Oportunidades, banking e investidor
// ============================================================

type Opportunity struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Org      string   `json:"org"`
	Type     string   `json:"type"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags"`
	Deadline string   `json:"deadline"`
	Link     string   `json:"link"`
}

// Banking is the mock banking cockpit snapshot. Amounts are display values only.
type Banking struct {
	Balance      float64              `json:"balance"`
	Income       float64              `json:"income"`
	Spend        float64              `json:"spend"`
	IBANLike     string               `json:"iban_like"`
	Categories   map[string]float64   `json:"categories"`
	Transactions []BankingTransaction `json:"transactions"`
}

type BankingTransaction struct {
	ID           string    `json:"id"`
	Counterparty string    `json:"counterparty"`
	Reference    string    `json:"reference"`
	Amount       float64   `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type InvestorDashboard struct {
	AUM                float64 `json:"aum"`
	ActiveSponsorships int     `json:"active_sponsorships"`
	ROI                float64 `json:"roi"`
	Funds              []Fund  `json:"funds"`
}

type Fund struct {
	Title  string `json:"title"`
	Target int    `json:"target"`
	Funded int    `json:"funded"`
	Focus  string `json:"focus"`
}

// ============================================================
// Requests
// ============================================================

type LoginRequest struct {
	Name string `json:"name"`
}

type PostRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type AchievementRequest struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}
