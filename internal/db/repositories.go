package db

import "gorm.io/gorm"

type Repositories struct {
	Students  *StudentRepository
	StudyLogs *StudyLogRepository
	Tasks     *TaskRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Students:  NewStudentRepository(database),
		StudyLogs: NewStudyLogRepository(database),
		Tasks:     NewTaskRepository(database),
	}
}
