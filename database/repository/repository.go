package repository

import (
	accountRepo "vaxsched/database/repository/account"
	appointmentRepo "vaxsched/database/repository/appointment"
	availabilityRepo "vaxsched/database/repository/availability"
	inventoryRepo "vaxsched/database/repository/inventory"
)

// Re-export the InventoryRepository interface and constructor.
type InventoryRepository = inventoryRepo.InventoryRepository

var NewGormInventoryRepo = inventoryRepo.NewGormInventoryRepo

// Re-export the AvailabilityRepository interface and constructor.
type AvailabilityRepository = availabilityRepo.AvailabilityRepository

var NewGormAvailabilityRepo = availabilityRepo.NewGormAvailabilityRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewGormAppointmentRepo = appointmentRepo.NewGormAppointmentRepo

// Re-export the AccountRepository interface and constructor.
type AccountRepository = accountRepo.AccountRepository

var NewGormAccountRepo = accountRepo.NewGormAccountRepo
