package configs

import (
	"log"

	"littlelemon/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedGroups makes sure the two fixed groups exist.
func SeedGroups() error {
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		var g entity.Group
		if err := db.Where("name = ?", name).FirstOrCreate(&g, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the superuser account if ADMIN_PASSWORD is set and the
// account does not exist yet.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping superuser seed")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:    cfg.AdminUsername,
		Password:    string(hashed),
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}
