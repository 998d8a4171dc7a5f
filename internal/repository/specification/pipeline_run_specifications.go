package specification

import "gorm.io/gorm"

type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}
