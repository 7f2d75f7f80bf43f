package models

import "gorm.io/gorm"

// Repository persists individual records on a gorm connection.
//
// Saves are upserts: records without an ID are created and get a new ID
// assigned, records with an ID overwrite the stored record. It backs the
// import operation, which needs persistence decoupled from the HTTP layer.
type Repository struct {
	DB *gorm.DB
}

func (r Repository) SaveVendor(vendor *Vendor) error {
	return r.DB.Save(vendor).Error
}

func (r Repository) SaveService(service *Service) error {
	return r.DB.Save(service).Error
}

func (r Repository) SaveSuburb(suburb *Suburb) error {
	return r.DB.Save(suburb).Error
}

func (r Repository) SaveSchedule(schedule *Schedule) error {
	return r.DB.Save(schedule).Error
}

func (r Repository) SaveBudget(budget *Budget) error {
	return r.DB.Save(budget).Error
}
