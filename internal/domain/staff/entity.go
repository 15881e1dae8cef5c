package staff

import "time"

type Staff struct {
	ID        string
	Name      string
	Role      *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
