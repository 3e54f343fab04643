package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"novel-reader-api/internal/config"
	"novel-reader-api/internal/seed"
	"novel-reader-api/internal/wire"
)

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting sample data seeding...")

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. 初始化数据层
	dataLayer, cleanup, err := wire.InitializeDataLayer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize data layer: %v", err)
	}
	defer cleanup()

	if !dataLayer.MongoClient.Available() {
		log.Fatalf("database not configured: set DATABASE_URL before seeding")
	}

	// 3. 写入示例小说与开篇章节
	seeder := seed.NewSeeder(dataLayer.NovelRepo, dataLayer.ChapterRepo)
	result, err := seeder.Run(ctx)
	if err != nil {
		log.Fatalf("failed to seed sample data: %v", err)
	}

	if result.Status == seed.StatusExists {
		fmt.Printf("Sample data already present, %d novels untouched.\n", len(result.Novels))
	} else {
		fmt.Printf("Seeded %d novels with their opening chapters.\n", len(result.Novels))
	}

	fmt.Println("Seeding completed successfully.")
}
