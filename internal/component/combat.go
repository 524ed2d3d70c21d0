// internal/component/combat.go
package component

// Health — компонент здоровья с окном неуязвимости после попадания
type Health struct {
	Value              int
	Max                int
	Invincible         int // сколько тиков ещё игнорируется урон
	InvincibleDuration int
}

// NewHealth создаёт полное здоровье.
func NewHealth(max, invincibleDuration int) Health {
	return Health{Value: max, Max: max, InvincibleDuration: invincibleDuration}
}

// TakeDamage applies amount unless the invincibility window is active.
// Accepted hits restart the window; hp never drops below zero.
// Returns whether the hit was accepted.
func (h *Health) TakeDamage(amount int) bool {
	if h.Invincible > 0 {
		return false
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	if h.Value > h.Max {
		h.Value = h.Max
	}
	h.Invincible = h.InvincibleDuration
	return true
}

// Tick отсчитывает один тик неуязвимости.
func (h *Health) Tick() {
	if h.Invincible > 0 {
		h.Invincible--
	}
}

// Alive — жива ли сущность
func (h Health) Alive() bool {
	return h.Value > 0
}

// Ratio — доля оставшегося здоровья, для полосок HP
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Value) / float64(h.Max)
}

// Rescale меняет максимум и заполняет здоровье заново.
func (h *Health) Rescale(max int) {
	h.Max = max
	h.Value = max
}

// Cooldown — счётчик тиков до следующего действия
type Cooldown struct {
	Remaining int
}

// Tick уменьшает счётчик, не опускаясь ниже нуля.
func (c *Cooldown) Tick() {
	if c.Remaining > 0 {
		c.Remaining--
	}
}

// Ready — можно ли действовать в этом тике
func (c Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Reset запускает кулдаун заново.
func (c *Cooldown) Reset(ticks int) {
	c.Remaining = ticks
}
