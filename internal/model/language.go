package model

// Language 语言目录，启动时写入种子数据，运行期只读
// swagger:model Language
type Language struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Code string `gorm:"size:10;not null" json:"code"`
	Flag string `gorm:"size:16;not null" json:"flag"`
}

func (Language) TableName() string {
	return "languages"
}
