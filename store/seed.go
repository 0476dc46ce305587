package store

import (
	"note_map_go/models"
)

// seedState возвращает данные по умолчанию для первого запуска:
// четыре метки пастельных цветов, четыре заметки и три связи между ними.
func seedState() ([]models.NoteData, []models.ConnectionData, []models.TagData) {
	tags := []models.TagData{
		{ID: "tag-1", Name: "Ideas", Color: "#8B5CF6"},
		{ID: "tag-2", Name: "Projects", Color: "#10B981"},
		{ID: "tag-3", Name: "Personal", Color: "#F59E0B"},
		{ID: "tag-4", Name: "Work", Color: "#EC4899"},
	}

	notes := []models.NoteData{
		{
			ID:       "note-1",
			Title:    "Project Ideas",
			Content:  "Need to brainstorm on these potential projects:\n- Mobile app redesign\n- Blog revamp\n- New landing page",
			Position: models.Position{X: 150, Y: 300},
			Tags:     []string{"tag-1", "tag-3"},
			Color:    "#8B5CF6",
		},
		{
			ID:       "note-2",
			Title:    "Mobile App Redesign",
			Content:  "Focus on improving the user experience and modernizing the visual design",
			Position: models.Position{X: 400, Y: 150},
			Tags:     []string{"tag-2"},
			Color:    "#10B981",
		},
		{
			ID:       "note-3",
			Title:    "Blog Revamp Ideas",
			Content:  "The blog needs a fresh look with:\n- New content categories\n- Better typography\n- Improved code snippets",
			Position: models.Position{X: 500, Y: 250},
			Tags:     []string{"tag-2", "tag-4"},
			Color:    "#10B981",
		},
		{
			ID:       "note-4",
			Title:    "UI Inspiration",
			Content:  "Check out these sites:\n- Dribbble\n- Behance\n- Awwwards",
			Position: models.Position{X: 520, Y: 80},
			Tags:     []string{"tag-1"},
			Color:    "#8B5CF6",
		},
	}

	connections := []models.ConnectionData{
		{ID: "conn-1", Source: "note-1", Target: "note-2"},
		{ID: "conn-2", Source: "note-2", Target: "note-4"},
		{ID: "conn-3", Source: "note-2", Target: "note-3"},
	}

	return notes, connections, tags
}
