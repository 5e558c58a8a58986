package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/memory"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

// failingStore wraps a real store and fails the named operation.
type failingStore struct {
	*memory.Store
	failOn string
	err    error
}

func (f *failingStore) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	if f.failOn == "notifications" {
		return nil, f.err
	}
	return f.Store.ListNotifications(ctx)
}

func (f *failingStore) AddPost(ctx context.Context, userID, text string) (*domain.Post, error) {
	if f.failOn == "post" {
		return nil, f.err
	}
	return f.Store.AddPost(ctx, userID, text)
}

func newStore() *memory.Store {
	return memory.NewStore(memory.DefaultSequences, func() time.Time {
		return time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	})
}

// --- Login ---

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Amara Okafor":   "amara-okafor",
		"  Leo  ":        "leo",
		"Ana Maria Lima": "ana-maria-lima",
		"   ":            "guest",
		"":               "guest",
	}
	for in, want := range tests {
		if got := service.Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLogin_DoesNotMutateStore(t *testing.T) {
	store := newStore()
	svc := service.NewLoginService(store, zap.NewNop())

	user, err := svc.Login(context.Background(), "  Amara Okafor ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Name != "Amara Okafor" || user.UserID != "amara-okafor" {
		t.Errorf("unexpected user: name=%q id=%q", user.Name, user.UserID)
	}
	if user.DVI != 768 {
		t.Errorf("expected DVI 768 from the stored user, got %d", user.DVI)
	}

	stored, _ := store.GetUser(context.Background())
	if stored.UserID != "mitra" {
		t.Errorf("store user changed to %q", stored.UserID)
	}
}

// --- Feed ---

func TestFeed_CreateAndList(t *testing.T) {
	svc := service.NewFeedService(newStore(), zap.NewNop())
	ctx := context.Background()

	post, err := svc.Create(ctx, domain.PostRequest{UserID: "amara", Text: "Got my first micro-loan approved"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if post.ID != 1003 {
		t.Errorf("expected id 1003, got %d", post.ID)
	}

	posts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(posts) != 4 || posts[0].ID != post.ID {
		t.Errorf("expected new post first in a 4-item feed, got %d items", len(posts))
	}
}

func TestFeed_CreateError(t *testing.T) {
	boom := errors.New("store down")
	svc := service.NewFeedService(&failingStore{Store: newStore(), failOn: "post", err: boom}, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.PostRequest{UserID: "amara", Text: "hello"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

// --- Profile ---

func TestGetProfile_Success(t *testing.T) {
	svc := service.NewProfileService(newStore(), observability.NewMetrics(), zap.NewNop())

	p, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.User.UserID != "mitra" || p.User.Band != "Catalyst" {
		t.Errorf("unexpected user: %+v", p.User)
	}
	if len(p.Achievements) != 3 {
		t.Errorf("expected 3 achievements, got %d", len(p.Achievements))
	}
	if len(p.Notifications) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(p.Notifications))
	}
}

func TestGetProfile_PartialFailure(t *testing.T) {
	boom := errors.New("notifications unavailable")
	store := &failingStore{Store: newStore(), failOn: "notifications", err: boom}
	svc := service.NewProfileService(store, observability.NewMetrics(), zap.NewNop())

	_, err := svc.GetProfile(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected notifications error, got %v", err)
	}
}

func TestAddAchievement(t *testing.T) {
	store := newStore()
	svc := service.NewProfileService(store, observability.NewMetrics(), zap.NewNop())
	ctx := context.Background()

	a, err := svc.AddAchievement(ctx, domain.AchievementRequest{Title: "Hackathon win", Year: 2025})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	p, _ := svc.GetProfile(ctx)
	if p.Achievements[0].ID != a.ID {
		t.Errorf("expected new achievement first, got %+v", p.Achievements[0])
	}
}

// --- Content ---

func TestContent(t *testing.T) {
	svc := service.NewContentService(newStore())
	ctx := context.Background()

	m, err := svc.Manifesto(ctx)
	if err != nil || len(m.Pillars) != 3 {
		t.Errorf("manifesto: err=%v pillars=%d", err, len(m.Pillars))
	}
	opps, err := svc.Opportunities(ctx)
	if err != nil || len(opps) != 3 {
		t.Errorf("opportunities: err=%v len=%d", err, len(opps))
	}
	b, err := svc.Banking(ctx)
	if err != nil || b.IBANLike != "ME00MTRA0001" {
		t.Errorf("banking: err=%v", err)
	}
	inv, err := svc.Investor(ctx)
	if err != nil || inv.ActiveSponsorships != 5 {
		t.Errorf("investor: err=%v", err)
	}
	tips, err := svc.MitraTips(ctx)
	if err != nil || len(tips.Prompts) != 4 {
		t.Errorf("tips: err=%v", err)
	}
}
