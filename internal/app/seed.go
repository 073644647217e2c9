package app

import (
	"context"
	"errors"
	"fmt"

	"portfolio_backend/internal/avatar"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"

	"gorm.io/gorm"
)

// seedFirstAdmin создает администратора из конфига, если его еще нет
func seedFirstAdmin(ctx context.Context, db *gorm.DB, a *App) error {
	adminEmail := a.Config.Admin.Email
	adminPassword := a.Config.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("admin.email or admin.password is not set. Skipping admin seeding.")
		return nil
	}

	created, err := a.Services.AuthService.EnsureAdmin(ctx, db, adminEmail, adminPassword)
	if err != nil {
		return err
	}
	if !created {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
	}
	return nil
}

var sampleSkills = []models.Skill{
	{Name: "JavaScript", Category: "Frontend", Proficiency: 90},
	{Name: "TypeScript", Category: "Frontend", Proficiency: 85},
	{Name: "React", Category: "Frontend", Proficiency: 90},
	{Name: "Next.js", Category: "Frontend", Proficiency: 85},
	{Name: "Go", Category: "Backend", Proficiency: 85},
	{Name: "Node.js", Category: "Backend", Proficiency: 80},
	{Name: "PostgreSQL", Category: "Databases", Proficiency: 75},
	{Name: "MySQL", Category: "Databases", Proficiency: 75},
	{Name: "Docker", Category: "Tooling", Proficiency: 65},
	{Name: "Git", Category: "Tooling", Proficiency: 85},
}

type sampleProject struct {
	title, description, imageURL, projectURL string
	technologies                             []string
}

var sampleProjects = []sampleProject{
	{
		title:        "Personal website",
		description:  "Portfolio site with an about section, skills and projects. Responsive layout with dark mode.",
		imageURL:     "/images/projects/personal-website.png",
		projectURL:   "https://github.com/yourusername/personal-website",
		technologies: []string{"React", "Next.js", "TypeScript", "Go", "PostgreSQL"},
	},
	{
		title:        "Online shop",
		description:  "Microservice storefront with user, catalog, order and payment modules.",
		imageURL:     "/images/projects/online-shop.png",
		projectURL:   "https://github.com/yourusername/online-shop",
		technologies: []string{"React", "Go", "MySQL", "Redis", "Docker"},
	},
	{
		title:        "Task tracker",
		description:  "Team task manager with assignment, tracking and reporting.",
		imageURL:     "/images/projects/task-management.png",
		projectURL:   "https://github.com/yourusername/task-management",
		technologies: []string{"React", "Node.js", "MongoDB", "Socket.IO"},
	},
}

// Seed заполняет пустую базу демонстрационными данными. Повторный запуск ничего не дублирует.
func Seed(ctx context.Context, a *App) error {
	db := a.DB.WithContext(ctx)

	if err := seedFirstAdmin(ctx, db, a); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedProfile(ctx, tx, a); err != nil {
			return err
		}
		if err := seedSettings(ctx, tx); err != nil {
			return err
		}
		if err := seedSkills(ctx, tx); err != nil {
			return err
		}
		return seedProjects(ctx, tx)
	})
}

func seedProfile(ctx context.Context, tx *gorm.DB, a *App) error {
	profileRepo := repositories.NewProfileRepository()

	created, err := profileRepo.EnsureExists(tx, &models.Profile{
		BaseModel: models.BaseModel{ID: a.Config.Profile.ID},
		Name:      "Ac",
		Title:     "Full-stack developer",
		Bio:       "I build web applications end to end. Five years of experience across several large projects.",
		Email:     a.Config.Admin.Email,
		Github:    "https://github.com/yourusername",
		Linkedin:  "https://linkedin.com/in/yourusername",
	})
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if !created {
		logger.CtxInfo(ctx, "Profile already exists. Skipping.")
		return nil
	}

	patch, err := avatar.BuildFieldUpdate(avatar.KindQQ, avatar.Params{QQNumber: "2066308410"})
	if err != nil {
		return err
	}
	if err := profileRepo.UpdateColumns(tx, a.Config.Profile.ID, patch.Columns()); err != nil {
		return fmt.Errorf("seed profile avatar: %w", err)
	}
	logger.CtxInfo(ctx, "Seeded profile", "avatar_source", patch.Source)
	return nil
}

func seedSettings(ctx context.Context, tx *gorm.DB) error {
	settingsRepo := repositories.NewSettingsRepository()

	_, err := settingsRepo.Get(tx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return err
	}

	settings := models.DefaultSiteSettings()
	settings.Description = "Personal portfolio"
	settings.Copyright = "© Ac"
	if err := settingsRepo.Save(tx, &settings); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	logger.CtxInfo(ctx, "Seeded site settings")
	return nil
}

func seedSkills(ctx context.Context, tx *gorm.DB) error {
	skillRepo := repositories.NewSkillRepository()

	count, err := skillRepo.Count(tx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sample := range sampleSkills {
		skill := sample
		if err := skillRepo.Create(tx, &skill); err != nil {
			return fmt.Errorf("seed skill %s: %w", skill.Name, err)
		}
	}
	logger.CtxInfo(ctx, "Seeded skills", "count", len(sampleSkills))
	return nil
}

func seedProjects(ctx context.Context, tx *gorm.DB) error {
	projectRepo := repositories.NewProjectRepository()

	count, err := projectRepo.Count(tx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sample := range sampleProjects {
		project := &models.Project{
			Title:       sample.title,
			Description: sample.description,
			ImageURL:    sample.imageURL,
			ProjectURL:  sample.projectURL,
		}
		project.SetTechnologies(sample.technologies)
		if err := projectRepo.Create(tx, project); err != nil {
			return fmt.Errorf("seed project %s: %w", sample.title, err)
		}
	}
	logger.CtxInfo(ctx, "Seeded projects", "count", len(sampleProjects))
	return nil
}
