package model

// ConnectionResult is the single row returned by every diagnostic query.
type ConnectionResult struct {
	Result      string `json:"result" gorm:"column:result"`
	CurrentTime int64  `json:"currentTime" gorm:"column:current_time"`
}
