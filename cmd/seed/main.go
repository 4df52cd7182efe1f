package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wedplan/internal/access"
	"wedplan/internal/config"
	"wedplan/internal/db"
	"wedplan/internal/model"
	"wedplan/internal/repository"
	"wedplan/internal/service"
)

// Demo dataset: an admin, a couple with a wedding, a handful of guests and a
// few budgeted tasks. Safe to run repeatedly.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wedding{},
		&model.WeddingMembership{},
		&model.GuestDetail{},
		&model.BudgetCategory{},
		&model.Task{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	weddingRepo := repository.NewWeddingRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	weddingService := service.NewWeddingService(userRepo, weddingRepo)
	taskService := service.NewTaskService(taskRepo, weddingRepo)

	ctx := context.Background()

	admin, err := ensureUser(ctx, userRepo, "admin@wedplan.dev", "Site Admin", model.RoleAdmin, "admin123")
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Admin user ready: %s (id=%d)", *admin.Email, admin.ID)

	sam, err := ensureUser(ctx, userRepo, "sam@wedplan.dev", "Sam Rivera", model.RoleCouple, "demo123")
	if err != nil {
		log.Fatalf("Failed to seed couple user: %v", err)
	}
	log.Printf("Couple user ready: %s (id=%d)", *sam.Email, sam.ID)

	wedding, err := weddingRepo.FindBySlug(ctx, "sam-alexs-big-day")
	switch {
	case err == nil:
		log.Printf("Demo wedding already exists (id=%d), skipping wedding seed", wedding.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		wedding, err = seedWedding(ctx, weddingService, taskService, sam.ID)
		if err != nil {
			log.Fatalf("Failed to seed wedding: %v", err)
		}
		log.Printf("Demo wedding created: %s (slug=%s)", wedding.Title, wedding.Slug)
	default:
		log.Fatalf("Failed to look up demo wedding: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// ensureUser finds a user by email or creates it with a hashed password.
func ensureUser(ctx context.Context, users repository.UserRepository, email, name, role, password string) (*model.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	user = &model.User{
		Name:         name,
		Email:        &email,
		PasswordHash: &hashStr,
		Role:         role,
		IsActive:     true,
		IsRegistered: true,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// seedWedding creates the demo wedding with guests and a few budgeted tasks.
func seedWedding(ctx context.Context, weddings service.WeddingService, tasks service.TaskService, creatorID uint) (*model.Wedding, error) {
	wedding, err := weddings.Create(ctx, creatorID, service.CreateWeddingInput{
		Title:        "Sam & Alex's Big Day",
		Location:     "Lisbon, Portugal",
		BudgetTotal:  decimal.NewFromInt(25000),
		PartnerEmail: "alex@wedplan.dev",
		PartnerName:  "Alex Moreau",
	})
	if err != nil {
		return nil, err
	}

	grant := &access.Grant{Level: access.LevelCouple, Wedding: wedding}

	plusOne := true
	guests := []service.GuestInput{
		{Email: "nina@wedplan.dev", Name: "Nina Park", AccessLevel: string(access.LevelWeddingAdmin), PartyRole: "maid of honor", Side: "partner_one"},
		{Email: "leo@wedplan.dev", Name: "Leo Costa", PartyRole: "best man", Side: "partner_two", PlusOne: &plusOne},
		{Email: "gran@wedplan.dev", Name: "Rosa Rivera", Dietary: "vegetarian", Side: "partner_one"},
	}
	for _, g := range guests {
		if _, err := weddings.AddGuest(ctx, grant, g); err != nil {
			return nil, err
		}
	}
	log.Printf("Seeded %d guests", len(guests))

	categoryByName := make(map[string]uint, len(wedding.BudgetCategories))
	for _, c := range wedding.BudgetCategories {
		categoryByName[c.Name] = c.ID
	}

	seedTasks := []service.CreateTaskInput{
		{Title: "Book the quinta", BudgetCategoryID: categoryByName["venue"], Budget: decimal.NewFromInt(8000), ActualCost: decimal.NewFromInt(7500)},
		{Title: "Tasting menu with caterer", BudgetCategoryID: categoryByName["catering"], Budget: decimal.NewFromInt(6000)},
		{Title: "Engagement shoot", BudgetCategoryID: categoryByName["photography"], Budget: decimal.NewFromInt(500), ActualCost: decimal.NewFromInt(450)},
	}
	for _, t := range seedTasks {
		if _, err := tasks.Create(ctx, grant, t); err != nil {
			return nil, err
		}
	}
	log.Printf("Seeded %d tasks", len(seedTasks))

	return wedding, nil
}
