package domain

// Subject is a taxonomy entry: a subject name with its ordered unit names.
type Subject struct {
	ID    uint     `gorm:"primaryKey"`
	Name  string   `gorm:"type:varchar(191);uniqueIndex:idx_subject_name;not null"`
	Units []string `gorm:"serializer:json"`
}
