package main

import (
	"fmt"

	"travel-diary/internal/model"
	"travel-diary/pkg/config"
	"travel-diary/pkg/database"
	"travel-diary/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	moderators := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "admin"},
		{"auditor", "auditor123", "auditor"},
	}

	for _, m := range moderators {
		var existing model.ModeratorModel
		if err := db.Where("username = ?", m.username).First(&existing).Error; err == nil {
			log.Info("Moderator %s already exists, skipping", m.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(m.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		moderator := &model.ModeratorModel{
			Username: m.username,
			Password: string(hash),
			Role:     m.role,
		}
		if err := db.Create(moderator).Error; err != nil {
			return fmt.Errorf("failed to create moderator %s: %w", m.username, err)
		}
		log.Info("Created moderator: %s (%s)", m.username, m.role)
	}

	testUsers := []struct {
		username string
		nickname string
		password string
	}{
		{"alice", "Alice", "password123"},
		{"bob", "Bob", "password123"},
		{"charlie", "Charlie", "password123"},
	}

	userIDs := make([]int64, 0, len(testUsers))

	for _, u := range testUsers {
		var existing model.UserModel
		if err := db.Where("username = ? OR nickname = ?", u.username, u.nickname).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			Username: u.username,
			Nickname: u.nickname,
			Password: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", u.username, err)
			continue
		}
		log.Info("Created user: %s", u.username)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return nil
	}

	demoDiaries := []struct {
		title   string
		content string
		status  string
	}{
		{"A week in Kyoto", "Temples, tea houses and the quiet back streets of Gion.", "approved"},
		{"Sunrise at Mount Bromo", "We left the homestay at 3am to catch the viewpoint.", "approved"},
		{"Waiting for review", "First draft of my trip notes, photos to follow.", "pending"},
	}

	for i, d := range demoDiaries {
		authorID := userIDs[i%len(userIDs)]

		var count int64
		db.Model(&model.DiaryModel{}).Where("author_id = ? AND title = ?", authorID, d.title).Count(&count)
		if count > 0 {
			log.Info("Diary %q already exists, skipping", d.title)
			continue
		}

		diary := &model.DiaryModel{
			AuthorID: authorID,
			Title:    d.title,
			Content:  d.content,
			Status:   d.status,
			Images: []model.DiaryImageModel{
				{ImageURL: fmt.Sprintf("https://picsum.photos/seed/%d/800/600", i*2+1), ImageOrder: 0},
				{ImageURL: fmt.Sprintf("https://picsum.photos/seed/%d/800/600", i*2+2), ImageOrder: 1},
			},
		}
		if err := db.Create(diary).Error; err != nil {
			log.Error("Failed to create diary %q: %v", d.title, err)
			continue
		}
		log.Info("Created diary: %s (%s)", d.title, d.status)
	}

	return nil
}
