package store

import (
	"note_map_go/models"
)

// Node - узел производного графа для внешнего компонента отрисовки диаграммы.
// Payload несет заметку целиком, чтобы карточка могла отрисовать заголовок,
// содержимое, цвет и метки.
type Node struct {
	ID       string          `json:"id"`
	Position models.Position `json:"position"`
	Payload  models.NoteData `json:"data"`
}

// Edge - ребро производного графа: направленная связь между двумя узлами.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Nodes возвращает снимок узлов графа по текущим заметкам стора.
// Снимок не является псевдонимом внутреннего состояния.
func (s *GraphStore) Nodes() []Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	nodes := make([]Node, 0, len(s.notes))
	for _, n := range copyNotes(s.notes) {
		nodes = append(nodes, Node{ID: n.ID, Position: n.Position, Payload: n})
	}
	return nodes
}

// Edges возвращает снимок ребер графа по текущим связям стора.
func (s *GraphStore) Edges() []Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges := make([]Edge, 0, len(s.connections))
	for _, c := range s.connections {
		edges = append(edges, Edge{ID: c.ID, Source: c.Source, Target: c.Target})
	}
	return edges
}
