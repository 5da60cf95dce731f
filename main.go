// File: vaxsched/main.go
package main

import (
	"context"
	"os"

	"vaxsched/cli"
	"vaxsched/config"
	"vaxsched/database"
	accountRepo "vaxsched/database/repository/account"
	appointmentRepo "vaxsched/database/repository/appointment"
	availabilityRepo "vaxsched/database/repository/availability"
	inventoryRepo "vaxsched/database/repository/inventory"
	"vaxsched/services/account"
	"vaxsched/services/booking"
	"vaxsched/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	database.InitDB()

	// repositories.
	invRepo := inventoryRepo.NewGormInventoryRepo()
	availRepo := availabilityRepo.NewGormAvailabilityRepo()
	apptRepo := appointmentRepo.NewGormAppointmentRepo()
	acctRepo := accountRepo.NewGormAccountRepo()

	// services.
	directoryService := &account.DefaultDirectoryService{
		Repo: acctRepo,
	}
	bookingEngine := &booking.DefaultBookingEngine{
		Inventory:          invRepo,
		Availability:       availRepo,
		Registry:           apptRepo,
		MaxReserveAttempts: config.AppConfig.MaxReserveAttempts,
	}

	shell := cli.New(bookingEngine, directoryService)

	if err := shell.Run(context.Background()); err != nil {
		logger.Sugar().Errorf("main: shell terminated: %v", err)
		os.Exit(1)
	}
}
