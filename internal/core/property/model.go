package property

import (
	"github.com/uptrace/bun"
)

type Model struct {
	bun.BaseModel `bun:"table:properties,alias:p"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull" json:"name"`
}
