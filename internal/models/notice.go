package models

type Notice struct {
	BaseModel
	Title   string `gorm:"not null"`
	Content string `gorm:"type:text;not null"`
	Pinned  bool   `gorm:"index;default:false"`
}

func (Notice) TableName() string {
	return "notices"
}
