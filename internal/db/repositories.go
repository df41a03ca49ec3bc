package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	SymptomLogs *SymptomLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
	}
}
