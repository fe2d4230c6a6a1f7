package commands

import (
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/config"
	"github.com/studypulse/studypulse-be/internal/database"
	"github.com/studypulse/studypulse-be/internal/models"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
	"github.com/studypulse/studypulse-be/internal/store"
)

var seedUser string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo tasks and sessions for one user",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedUser, "user", "demo-user", "user ID to seed data for")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Env)

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatal("db init error", "error", err)
	}

	log.Info("seeding demo data", "user", seedUser)
	if err := seedTasks(db, seedUser); err != nil {
		return err
	}
	if err := seedSessions(db, seedUser); err != nil {
		return err
	}
	log.Info("seeding done")
	return nil
}

func seedTasks(db *gorm.DB, uid string) error {
	repo := store.NewTaskRepository(db)
	in5d := time.Now().AddDate(0, 0, 5)
	in2d := time.Now().AddDate(0, 0, 2)
	tomorrow := time.Now().AddDate(0, 0, 1)
	done := time.Now().AddDate(0, 0, -18)

	tasks := []models.Task{
		{Title: "Complete Project Report", Description: "Write introduction, methodology, results, and conclusion.", Priority: "High", Status: "Pending", DueDate: &in5d},
		{Title: "Review Backend Code", Description: "Check for bugs and optimize performance.", Priority: "Medium", Status: "Pending", DueDate: &in2d},
		{Title: "Meeting with Project Group", Description: "Discuss progress and next steps.", Priority: "Medium", Status: "Pending", DueDate: &tomorrow},
		{Title: "Read 'Clean Code' Chapter 5", Description: "Focus on formatting and meaningful names.", Priority: "Low", Status: "Pending"},
		{Title: "Setup Database", Description: "Create schema and run migrations.", Priority: "High", Status: "Completed", Completed: true, CompletedAt: &done},
	}
	for i := range tasks {
		if err := repo.Create(uid, &tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedSessions(db *gorm.DB, uid string) error {
	repo := store.NewSessionRepository(db)
	now := time.Now()

	add := func(daysAgo, hour, minute int, duration float64, subject, notes string) error {
		start := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()).
			AddDate(0, 0, -daysAgo)
		end := start.Add(time.Duration(duration) * time.Minute)
		return repo.Create(uid, &models.StudySession{
			StartTime:      start,
			EndTime:        &end,
			FocusedMinutes: &duration,
			Subject:        subject,
			Notes:          notes,
		})
	}

	seeds := []struct {
		daysAgo, hour, minute int
		duration              float64
		subject, notes        string
	}{
		{0, 9, 0, 30, "Algorithms", "Practiced sorting algorithms."},
		{0, 14, 30, 45, "React Hooks", "Learned about useEffect dependencies."},
		{1, 10, 0, 60, "Calculus", "Reviewed differentiation techniques."},
		{1, 19, 0, 90, "Project Planning", "Outlined features for next sprint."},
		{2, 8, 45, 25, "Data Structures", "Studied linked lists."},
		{2, 13, 0, 50, "Operating Systems", "Read about process scheduling."},
		{3, 11, 15, 35, "Physics", "Solved kinematics problems."},
		{3, 17, 0, 75, "Machine Learning", "Understood linear regression concepts."},
		{4, 9, 30, 40, "Web Security", "Explored XSS prevention."},
		{4, 15, 0, 60, "Networking", "Reviewed TCP/IP model."},
		{5, 10, 0, 20, "Logic", "Worked on propositional logic."},
		{5, 18, 0, 100, "Node.js Backend", "Implemented user authentication flow."},
		{6, 11, 0, 45, "Frontend UI", "Designed new components."},
		{6, 16, 0, 55, "Database Design", "Normalized schema for project."},
	}
	for _, s := range seeds {
		if err := add(s.daysAgo, s.hour, s.minute, s.duration, s.subject, s.notes); err != nil {
			return err
		}
	}
	return nil
}
