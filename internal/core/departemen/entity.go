package departemen

import "time"

// Departemen は部署エンティティです。
type Departemen struct {
	ID             string
	NamaDepartemen string
	SlugDepartemen string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
