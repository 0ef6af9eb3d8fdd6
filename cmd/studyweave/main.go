package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/studyweave/studyweave/internal/app"
	"github.com/studyweave/studyweave/internal/cli"
	"github.com/studyweave/studyweave/internal/config"
	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	blockRepo := repository.NewSQLiteBlockRepo(database)
	versionRepo := repository.NewSQLitePlanVersionRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	energyRepo := repository.NewSQLiteEnergyProfileRepo(database)
	reviewRepo := repository.NewSQLiteReviewStateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	previews := service.NewPreviewStore(cfg.PreviewTTL)

	appCLI := &cli.App{
		Courses:      service.NewCourseService(courseRepo),
		Tasks:        service.NewTaskService(taskRepo, courseRepo),
		Availability: service.NewAvailabilityService(availabilityRepo),
		Schedule:     service.NewScheduleService(taskRepo, blockRepo, availabilityRepo, uow, previews, logger),
		Versions:     service.NewVersionService(versionRepo, uow, logger),
		WhatIf:       service.NewWhatIfService(taskRepo, blockRepo, availabilityRepo),
		FreeTime:     service.NewFreeTimeService(availabilityRepo),
		Reviews:      service.NewReviewService(taskRepo, reviewRepo),
		Energy:       service.NewEnergyService(taskRepo, energyRepo),

		DefaultUser: cfg.DefaultUser,
	}

	// Detect interactive terminal for the task-add form.
	appCLI.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(appCLI)
	return rootCmd.Execute()
}
