package db

import "gorm.io/gorm"

// Database abstracts the GORM handle so repositories can be constructed
// against any connection (or a test double).
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
