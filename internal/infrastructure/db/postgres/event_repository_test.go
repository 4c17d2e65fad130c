package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cityevents/events-system/internal/core/domain"
)

// openTestDB opens a fresh in-memory SQLite database with the production
// schema. Pure-Go driver, so the repository queries run exactly as written.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) uint {
	t.Helper()
	user := domain.User{Username: username, Email: email, PasswordHash: "x", Role: domain.RoleAdmin}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestEventRepository_List_OrderedAndJoined(t *testing.T) {
	db := openTestDB(t)
	adminID := seedUser(t, db, "admin", "admin@example.com")
	repo := NewEventRepository(db)
	ctx := context.Background()

	// inserted out of date order on purpose
	for _, e := range []domain.Event{
		{Title: "Knygų Mugė", Description: "d", EventDate: "2025-09-10", Location: "Kultūros centras", Category: domain.CategoryCulture, CreatedBy: adminID},
		{Title: "Vasaros Festivalis 2025", Description: "d", EventDate: "2025-07-15", Location: "Senamiesčio aikštė", Category: domain.CategoryMusic, CreatedBy: adminID},
		{Title: "Futbolo Čempionatas", Description: "d", EventDate: "2025-08-20", Location: "Stadionas Žalgiris", Category: domain.CategorySport, CreatedBy: adminID},
	} {
		event := e
		if _, err := repo.Create(ctx, &event); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	wantOrder := []string{"2025-07-15", "2025-08-20", "2025-09-10"}
	for i, want := range wantOrder {
		if events[i].EventDate != want {
			t.Fatalf("position %d: expected date %s, got %s", i, want, events[i].EventDate)
		}
	}
	for _, e := range events {
		if e.CreatedByUsername != "admin" {
			t.Fatalf("expected joined username, got %q", e.CreatedByUsername)
		}
	}
}

func TestEventRepository_Create_ReadAfterWrite(t *testing.T) {
	db := openTestDB(t)
	adminID := seedUser(t, db, "admin", "admin@example.com")
	repo := NewEventRepository(db)

	image := "https://example.com/fair.jpg"
	created, err := repo.Create(context.Background(), &domain.Event{
		Title:       "Kulinarijos Festas",
		Description: "Maisto festivalis",
		EventDate:   "2025-10-05",
		Location:    "Laisvės alėja",
		Category:    domain.CategoryFood,
		ImageURL:    &image,
		CreatedBy:   adminID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.ImageURL == nil || *created.ImageURL != image {
		t.Fatalf("re-read row missing image url: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("re-read row missing created_at")
	}

	// the returned record must reflect what is actually stored
	var stored domain.Event
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("read stored row: %v", err)
	}
	if stored.Title != created.Title || stored.EventDate != created.EventDate {
		t.Fatalf("returned record diverges from stored row: %+v vs %+v", created, stored)
	}
}

func TestEventRepository_Delete_TwiceYieldsNotFound(t *testing.T) {
	db := openTestDB(t)
	adminID := seedUser(t, db, "admin", "admin@example.com")
	repo := NewEventRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Event{
		Title: "Senamiesčio Turgus", Description: "d", EventDate: "2025-12-01",
		Location: "Senamiestis", Category: domain.CategoryOther, CreatedBy: adminID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

func TestEventRepository_Delete_MissingID(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepository(db)

	if err := repo.Delete(context.Background(), 12345); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestAuthRepository_FindByEmail(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "admin", "admin@example.com")
	repo := NewAuthRepository(db)
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user.Username != "admin" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := EnsureAdmin(ctx, db, "admin@example.com", "s3cret", "admin"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := EnsureAdmin(ctx, db, "admin@example.com", "s3cret", "admin"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single admin row, got %d", count)
	}
}
