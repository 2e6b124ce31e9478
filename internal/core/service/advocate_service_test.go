package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/knowledge"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// directoryFixture mimics the ordering the real SQL query applies: rating
// descending, then experience descending.
func directoryFixture() *stubAdvocateRepo {
	criminal := []domain.Advocate{
		{UserID: 1, FullName: "Adv. Kiran Desai", Specializations: "criminal law", Rating: 4.9, YearsExperience: 12},
		{UserID: 2, FullName: "Adv. Meena Nair", Specializations: "criminal law", Rating: 4.7, YearsExperience: 15},
		{UserID: 3, FullName: "Adv. Arjun Shetty", Specializations: "criminal law", Rating: 4.7, YearsExperience: 8},
		{UserID: 4, FullName: "Adv. Farah Khan", Specializations: "criminal law", Rating: 4.2, YearsExperience: 20},
	}
	top := append([]domain.Advocate{
		{UserID: 5, FullName: "Adv. Divya Pillai", Specializations: "family law", Rating: 5.0, YearsExperience: 10},
	}, criminal...)
	return &stubAdvocateRepo{
		bySpec:   map[string][]domain.Advocate{"criminal": criminal},
		topRated: top,
	}
}

func TestAdvocateRecommend(t *testing.T) {
	ctx := context.Background()
	repo := directoryFixture()
	svc := NewAdvocateService(repo, zerolog.Nop())

	t.Run("matched specialization returns at most three, best first", func(t *testing.T) {
		rec, err := svc.Recommend(ctx, "I was arrested after a false FIR")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if rec.Specialization != "criminal" {
			t.Errorf("specialization = %q, want criminal", rec.Specialization)
		}
		if len(rec.Advocates) != 3 {
			t.Fatalf("got %d advocates, want 3", len(rec.Advocates))
		}
		if rec.Advocates[0].FullName != "Adv. Kiran Desai" {
			t.Errorf("first advocate = %q, want the best rated", rec.Advocates[0].FullName)
		}
		for i := 1; i < len(rec.Advocates); i++ {
			prev, cur := rec.Advocates[i-1], rec.Advocates[i]
			if cur.Rating > prev.Rating {
				t.Errorf("advocates not ordered by rating: %f after %f", cur.Rating, prev.Rating)
			}
			if cur.Rating == prev.Rating && cur.YearsExperience > prev.YearsExperience {
				t.Error("equal ratings not ordered by experience")
			}
		}
	})

	t.Run("generic query falls back to top rated", func(t *testing.T) {
		rec, err := svc.Recommend(ctx, "I need general legal help")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if rec.Specialization != knowledge.GeneralSpecialization {
			t.Errorf("specialization = %q, want general", rec.Specialization)
		}
		if len(rec.Advocates) != 3 {
			t.Fatalf("got %d advocates, want 3", len(rec.Advocates))
		}
		if rec.Advocates[0].FullName != "Adv. Divya Pillai" {
			t.Errorf("first advocate = %q, want the top rated overall", rec.Advocates[0].FullName)
		}
	})
}

func TestAdvocateList(t *testing.T) {
	repo := directoryFixture()
	svc := NewAdvocateService(repo, zerolog.Nop())

	advocates, total, err := svc.List(context.Background(), ports.ListAdvocatesFilter{Limit: 500})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != int64(len(repo.topRated)) {
		t.Errorf("total = %d, want %d", total, len(repo.topRated))
	}
	if len(advocates) == 0 {
		t.Error("expected advocates")
	}
}
