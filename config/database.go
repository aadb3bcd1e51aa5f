package config

import (
	"fmt"

	"github.com/Merchantry/backoffice/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	err = DB.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.Promotion{},
		&models.PricingRule{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.PurchaseOrderInvoice{},
		&models.PurchaseOrderTemplate{},
		&models.PurchaseOrderTemplateItem{},
		&models.LicenseValidationAuditLog{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
