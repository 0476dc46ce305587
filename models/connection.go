package models

// Connection представляет направленную связь между двумя заметками (серверный вариант).
type Connection struct {
	ID       int64  `json:"id" db:"Id"`
	SourceID int64  `json:"sourceId" db:"SourceId"` // ID заметки-источника
	TargetID int64  `json:"targetId" db:"TargetId"` // ID заметки-цели
	UserID   *int64 `json:"userId,omitempty" db:"UserId"`
}

// InsertConnection - данные для создания новой связи.
type InsertConnection struct {
	SourceID int64  `json:"sourceId"`
	TargetID int64  `json:"targetId"`
	UserID   *int64 `json:"userId,omitempty"`
}

// Validate отклоняет связи без конечных точек и петли (source == target).
func (c *InsertConnection) Validate() error {
	if c.SourceID <= 0 || c.TargetID <= 0 {
		return &ValidationError{Field: "sourceId/targetId", Reason: "связь должна указывать обе заметки"}
	}
	if c.SourceID == c.TargetID {
		return &ValidationError{Field: "targetId", Reason: "заметка не может быть связана сама с собой"}
	}
	return nil
}

// ConnectionData представляет связь клиентского стора (строковые ID).
type ConnectionData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}
