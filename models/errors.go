package models

import "fmt"

// ValidationError описывает некорректные или неполные данные сущности.
// Транспортный слой отображает её в HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}
