package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/config"
	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	pginfra "github.com/saffco/skincare-backend/internal/infrastructure/postgres"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

func strPtr(s string) *string { return &s }

var demoArticles = []entity.Article{
	{Title: "Mengenal Jenis Kulit", Content: "Kenali apakah kulitmu berminyak, kering, kombinasi, atau sensitif sebelum memilih produk."},
	{Title: "Urutan Skincare Pagi", Content: "Pembersih, toner, serum, pelembap, lalu tabir surya."},
	{Title: "Kenapa Sunscreen Wajib", Content: "Paparan UV mempercepat penuaan dini; gunakan SPF 30 atau lebih setiap hari."},
}

var demoProducts = []entity.Product{
	{ProductName: "Gentle Cleanser", Description: strPtr("Pembersih wajah pH seimbang"), Price: 85000},
	{ProductName: "Niacinamide Serum", Description: strPtr("Serum 10% niacinamide untuk kulit berminyak"), Price: 129000},
	{ProductName: "Sunscreen SPF 50", Description: strPtr("Tabir surya ringan tanpa whitecast"), Price: 99000},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	username, password := "demoUser", "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	id, err := users.Create(ctx, username, hash)
	switch {
	case errors.Is(err, repo.ErrAlreadyExists):
		fmt.Printf("user %s already exists\n", username)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%d username=%s password=%s\n", id, username, password)
	}

	articles := pginfra.NewArticleRepository(pool)
	if existing, err := articles.List(ctx); err != nil {
		log.Fatalf("failed to list articles: %v", err)
	} else if len(existing) == 0 {
		for i := range demoArticles {
			if err := articles.Create(ctx, &demoArticles[i]); err != nil {
				log.Fatalf("failed to seed article: %v", err)
			}
		}
		fmt.Printf("seeded %d articles\n", len(demoArticles))
	}

	products := pginfra.NewProductRepository(pool)
	if existing, err := products.List(ctx); err != nil {
		log.Fatalf("failed to list products: %v", err)
	} else if len(existing) == 0 {
		for i := range demoProducts {
			if err := products.Create(ctx, &demoProducts[i]); err != nil {
				log.Fatalf("failed to seed product: %v", err)
			}
		}
		fmt.Printf("seeded %d products\n", len(demoProducts))
	}
}
