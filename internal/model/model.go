package model

import "time"

// Profile is a display-only person card shown in the profiles room.
type Profile struct {
	ID   string
	Name string
	Role string
}

// Note is a free-form text note.
type Note struct {
	ID        string    `gorm:"primaryKey" bson:"_id"`
	Title     string    `gorm:"type:text;not null" bson:"title"`
	Content   string    `gorm:"type:text" bson:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"created_at"`
}

// Todo is a single checklist item belonging to one owner.
// OwnerID comes from configuration and stands in for a real account system.
type Todo struct {
	ID        string    `gorm:"primaryKey" bson:"_id"`
	Title     string    `gorm:"type:text;not null" bson:"title"`
	Done      bool      `gorm:"not null" bson:"done"`
	OwnerID   string    `gorm:"index;not null" bson:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"created_at"`
}

// Weather is a current-conditions snapshot for one city.
type Weather struct {
	City        string
	Temperature float64 // degrees Celsius
	Humidity    float64 // percent
	Condition   string
	Description string
	Icon        string
	Lat         float64
	Lon         float64
	FetchedAt   time.Time
}

// Schedule is the structured result of extracting date, time and location
// from free text. Date, Time and Location stay empty when the extractor
// could not resolve them; Confidence is 0.0 to 1.0.
type Schedule struct {
	ID         string
	Title      string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM, 24-hour
	Location   string
	RawInput   string
	Confidence float64
	CreatedAt  time.Time
}
