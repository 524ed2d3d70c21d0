// internal/entity/ids.go
package entity

// ID — идентификатор сущности в пределах одного забега
type ID uint64

// IDGenerator выдаёт возрастающие идентификаторы, начиная с 1.
type IDGenerator struct {
	NextID ID
}

func (g *IDGenerator) NewEntity() ID {
	if g.NextID == 0 {
		g.NextID = 1
	}
	id := g.NextID
	g.NextID++
	return id
}

// Reset начинает нумерацию заново.
func (g *IDGenerator) Reset() {
	g.NextID = 1
}
