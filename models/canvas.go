package models

// CanvasState - состояние вьюпорта холста (панорамирование и масштаб).
// Это одиночное значение без идентичности; в локальное хранилище не сохраняется.
type CanvasState struct {
	Position Position `json:"position"`
	Scale    float64  `json:"scale"`
}

// CanvasStatePatch - частичное обновление состояния холста.
type CanvasStatePatch struct {
	Position *Position `json:"position,omitempty"`
	Scale    *float64  `json:"scale,omitempty"`
}

// Apply накладывает патч на состояние холста, не трогая отсутствующие поля.
func (p *CanvasStatePatch) Apply(c *CanvasState) {
	if p.Position != nil {
		c.Position = *p.Position
	}
	if p.Scale != nil {
		c.Scale = *p.Scale
	}
}
