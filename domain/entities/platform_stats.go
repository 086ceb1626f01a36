package entities

import (
	"time"
)

// PlatformStats is the single-row aggregate shown on the dashboard header.
// TransactionsToday moves via an atomic in-place increment when a
// transaction is created.
type PlatformStats struct {
	ID                string    `db:"id" json:"id"`
	ActiveMicroApps   int       `db:"active_micro_apps" json:"activeMicroApps"`
	TransactionsToday int       `db:"transactions_today" json:"transactionsToday"`
	DataNodes         int       `db:"data_nodes" json:"dataNodes"`
	Contributors      int       `db:"contributors" json:"contributors"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// PlatformStatsUpdate carries a partial update; nil fields are left untouched.
type PlatformStatsUpdate struct {
	ActiveMicroApps   *int
	TransactionsToday *int
	DataNodes         *int
	Contributors      *int
}
