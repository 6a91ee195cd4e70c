package db_models

type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`

	Trips []Trip `gorm:"foreignKey:UserID" json:"-"`
}
