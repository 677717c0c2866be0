package model

// swagger:model User
type User struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile 对外暴露的用户信息（不含密码）
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}
