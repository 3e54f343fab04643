// Package seed 提供演示数据的幂等填充
package seed

import (
	"context"
	"fmt"

	"novel-reader-api/internal/domain/entity"
	"novel-reader-api/internal/domain/repository"
	"novel-reader-api/pkg/logger"
	"novel-reader-api/pkg/metrics"
)

// 填充结果状态
const (
	StatusSeeded = "seeded"
	StatusExists = "exists"
)

// Result 填充结果
type Result struct {
	Status string
	Novels []*entity.Novel
}

// Seeder 演示数据填充器
type Seeder struct {
	novelRepo   repository.NovelRepository
	chapterRepo repository.ChapterRepository
}

// NewSeeder 创建填充器
func NewSeeder(novelRepo repository.NovelRepository, chapterRepo repository.ChapterRepository) *Seeder {
	return &Seeder{
		novelRepo:   novelRepo,
		chapterRepo: chapterRepo,
	}
}

// Run 填充演示数据
//
// 库中已有小说时跳过写入并返回现存记录，可安全重复调用。
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	count, err := s.novelRepo.Count(ctx)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to count novels: %w", err)
	}

	if count > 0 {
		novels, err := s.novelRepo.List(ctx, 5)
		if err != nil {
			metrics.SeedRunsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to list novels: %w", err)
		}
		metrics.SeedRunsTotal.WithLabelValues("exists").Inc()
		logger.Info(ctx, "demo data already present, skipping seed", "count", count)
		return &Result{Status: StatusExists, Novels: novels}, nil
	}

	cover1 := "https://images.unsplash.com/photo-1520975980471-4f0f2c56b05c?q=80&w=1200&auto=format&fit=crop"
	n1 := entity.NewNovel(
		"Neon Skies of Andromeda",
		"Ava Kestrel",
		"A rogue pilot and a sentient starship uncover a conspiracy spanning galaxies.",
		&cover1,
		[]string{"Sci-Fi", "Space Opera", "Adventure"},
	)

	cover2 := "https://images.unsplash.com/photo-1526318472351-c75fcf070305?q=80&w=1200&auto=format&fit=crop"
	n2 := entity.NewNovel(
		"Quantum Garden",
		"Jun Park",
		"In a city where time blossoms like petals, a gardener tends to timelines.",
		&cover2,
		[]string{"Speculative", "Time", "Mystery"},
	)

	n1ID, err := s.novelRepo.Create(ctx, n1)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to seed novel: %w", err)
	}
	n2ID, err := s.novelRepo.Create(ctx, n2)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to seed novel: %w", err)
	}

	chapters := []*entity.Chapter{
		entity.NewChapter(n1ID.Hex(), 1, "Docking Under Neon",
			`The city-orbit glowed like a halo around the dead moon. As Kestrel aligned the ship with Dock 47, the hull hummed—anxious, aware.
"You sure about this?" the ship asked, voice like rain on glass.
"No," she said, and smiled.`),
		entity.NewChapter(n1ID.Hex(), 2, "Ghost Frequencies",
			`The transmission carried a heartbeat buried in static. Every station they passed began to blink in unison.
The pattern spelled a name Kestrel swore she'd forgotten.`),
		entity.NewChapter(n2ID.Hex(), 1, "Pruning the Dawn",
			`Morning arrived in layers, like rings inside a tree. Jae clipped the excess day and folded it into the compost of yesterday.`),
	}

	for _, ch := range chapters {
		if _, err := s.chapterRepo.Create(ctx, ch); err != nil {
			metrics.SeedRunsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to seed chapter: %w", err)
		}
	}

	novels, err := s.novelRepo.List(ctx, 0)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to list novels: %w", err)
	}

	metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
	logger.Info(ctx, "demo data seeded", "novels", len(novels), "chapters", len(chapters))
	return &Result{Status: StatusSeeded, Novels: novels}, nil
}
