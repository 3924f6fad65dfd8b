package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dinnerclub/internal/config"
	"dinnerclub/internal/db"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// Seed data for local development: a club with three verified members, a
// capacity-limited dinner and an open date poll.
var seedMembers = []struct {
	Email string
	Name  string
	Role  string
}{
	{"ana@example.com", "Ana Duarte", model.RoleOwner},
	{"ben@example.com", "Ben Keller", model.RoleMember},
	{"cho@example.com", "Cho Minseo", model.RoleMember},
}

const seedPassword = "dinner123"

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
		&model.Club{},
		&model.Membership{},
		&model.Event{},
		&model.RSVP{},
		&model.DatePoll{},
		&model.DatePollOption{},
		&model.DatePollVote{},
		&model.WishlistRestaurant{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	clubRepo := repository.NewClubRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	pollRepo := repository.NewDatePollRepository(gormDB)

	users, err := seedUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users (password %q)", len(users), seedPassword)

	club, err := seedClub(ctx, clubRepo, membershipRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed club: %v", err)
	}
	log.Printf("Seeded club %q (%s)", club.Name, club.ID)

	if err := seedEvent(ctx, eventRepo, club, users[1]); err != nil {
		log.Fatalf("Failed to seed event: %v", err)
	}
	if err := seedPoll(ctx, pollRepo, club, users[0]); err != nil {
		log.Fatalf("Failed to seed date poll: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, repo repository.UserRepository) ([]*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*model.User, 0, len(seedMembers))
	for _, m := range seedMembers {
		existing, err := repo.FindByEmail(ctx, m.Email)
		if err == nil {
			users = append(users, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check user %s: %w", m.Email, err)
		}

		user := &model.User{
			Email:        m.Email,
			Name:         m.Name,
			PasswordHash: string(hash),
			Verified:     true,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", m.Email, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedClub(ctx context.Context, clubRepo repository.ClubRepository, membershipRepo repository.MembershipRepository, users []*model.User) (*model.Club, error) {
	code := "TASTY7"
	club, err := clubRepo.FindByJoinCode(ctx, code)
	if err == nil {
		return club, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check club: %w", err)
	}

	club = &model.Club{
		Name:        "Thursday Supper Club",
		Privacy:     model.ClubPrivacyPrivate,
		JoinCode:    &code,
		CreatedByID: users[0].ID,
	}
	if err := clubRepo.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	for i, user := range users {
		if err := membershipRepo.Create(ctx, &model.Membership{
			ClubID: club.ID,
			UserID: user.ID,
			Role:   seedMembers[i].Role,
		}); err != nil {
			return nil, fmt.Errorf("create membership for %s: %w", user.Email, err)
		}
	}
	return club, nil
}

func seedEvent(ctx context.Context, repo repository.EventRepository, club *model.Club, picker *model.User) error {
	maxSeats := uint(2)
	event := &model.Event{
		ClubID:         club.ID,
		PickerID:       picker.ID,
		RestaurantName: "Osteria Nonna",
		Cuisine:        "Italian",
		EventDate:      time.Now().AddDate(0, 0, 10),
		Location:       "12 Via Roma",
		MaxSeats:       &maxSeats,
		Status:         model.EventStatusPending,
	}
	return repo.Create(ctx, event)
}

func seedPoll(ctx context.Context, repo repository.DatePollRepository, club *model.Club, chooser *model.User) error {
	if _, err := repo.FindLive(ctx, club.ID, time.Now()); err == nil {
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check live poll: %w", err)
	}

	poll := &model.DatePoll{
		ClubID:      club.ID,
		CreatedByID: chooser.ID,
		Title:       "Next dinner date",
		Status:      model.PollStatusOpen,
		ClosesAt:    time.Now().Add(model.PollWindow),
	}
	options := make([]model.DatePollOption, 3)
	for i := range options {
		order := i
		options[i] = model.DatePollOption{
			OptionDate:   time.Now().AddDate(0, 0, 7+i),
			DisplayOrder: &order,
		}
	}
	return repo.Create(ctx, poll, options)
}
