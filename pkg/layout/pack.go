package layout

import (
	"fmt"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// PlacedRoom is a room rectangle on a story. (X, Z) is the corner nearest the
// plan origin (back-left), W runs along X and D along Z.
type PlacedRoom struct {
	Room     plan.RoomSpec `json:"room"`
	Index    int           `json:"index"` // position in the plan's room list
	Category Category      `json:"category"`
	X        float64       `json:"x"`
	Z        float64       `json:"z"`
	W        float64       `json:"w"`
	D        float64       `json:"d"`
}

// Rect returns the room rectangle.
func (r PlacedRoom) Rect() geo.Rectangle {
	return geo.Rectangle{X: r.X, Z: r.Z, W: r.W, D: r.D}
}

// StoryLayout is the packed room list for one story.
type StoryLayout struct {
	Story int          `json:"story"`
	Rooms []PlacedRoom `json:"rooms"`
}

// RoomArea returns the total area of the placed rooms in square feet.
func (l StoryLayout) RoomArea() float64 {
	total := 0.0
	for _, r := range l.Rooms {
		total += r.W * r.D
	}
	return total
}

// candidate is a room waiting to be packed.
type candidate struct {
	index    int
	room     plan.RoomSpec
	category Category
	w, d     float64
}

// PackRooms distributes rooms over stories and shelf-packs each story into
// the footprint. One StoryLayout is returned per story, in story order, even
// when a story receives no rooms.
//
// Main-level and unclassified rooms go on story 0; upper-level rooms are dealt
// round-robin across the stories above it. A single-story plan packs every
// room on story 0. Rooms that do not fit the remaining depth are dropped and
// reported as warnings.
func PackRooms(rooms []plan.RoomSpec, fp Footprint, stories int) ([]StoryLayout, *validation.Report) {
	report := validation.NewReport()
	if stories < 1 {
		stories = 1
	}

	queues := make([][]candidate, stories)
	upper := 0
	for i, room := range rooms {
		w, d, ok := ParseDimensions(room.Dimensions)
		if !ok {
			report.AddWarning(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("room %q: unreadable dimensions, using %.0f x %.0f ft", room.Name, DefaultRoomWidth, DefaultRoomDepth),
				PlanPath:    fmt.Sprintf("rooms[%d].dimensions", i),
				ActualValue: room.Dimensions,
				Expected:    "W x D in feet, e.g. 14' x 12'",
			})
		}
		c := candidate{index: i, room: room, category: ClassifyRoom(room.Name), w: w, d: d}

		story := 0
		if stories > 1 && c.category == CategoryUpper {
			story = 1 + upper%(stories-1)
			upper++
		}
		queues[story] = append(queues[story], c)
	}

	layouts := make([]StoryLayout, stories)
	for s := range layouts {
		layouts[s] = StoryLayout{Story: s, Rooms: packStory(queues[s], fp, s, report)}
		report.AddInfo(validation.Result{
			Level: validation.LevelLayout,
			Message: fmt.Sprintf("story %d: placed %d of %d rooms, %.0f of %.0f sq ft",
				s, len(layouts[s].Rooms), len(queues[s]), layouts[s].RoomArea(), fp.Area()),
		})
	}
	return layouts, report
}

// packStory runs the left-to-right shelf packer for a single story.
func packStory(queue []candidate, fp Footprint, story int, report *validation.Report) []PlacedRoom {
	const half = ExteriorWallThickness / 2
	minX, minZ := half, half
	maxX, maxZ := fp.Width-half, fp.Depth-half
	usableW := maxX - minX

	placed := make([]PlacedRoom, 0, len(queue))
	x, z := minX, minZ
	rowDepth := 0.0

	for _, c := range queue {
		w, d := c.w, c.d
		if w > usableW {
			report.AddInfo(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("room %q: width %.1f ft clamped to usable footprint width %.1f ft", c.room.Name, w, usableW),
				PlanPath:    fmt.Sprintf("rooms[%d].dimensions", c.index),
				ActualValue: w,
			})
			w = usableW
		}

		if x > minX && x+w > maxX {
			x = minX
			z += rowDepth + InteriorWallThickness
			rowDepth = 0
		}

		if z+d > maxZ {
			report.AddWarning(validation.Result{
				Level:       validation.LevelLayout,
				Message:     fmt.Sprintf("room %q (%.1f x %.1f ft) does not fit the remaining depth of story %d and was omitted", c.room.Name, w, d, story),
				PlanPath:    fmt.Sprintf("rooms[%d]", c.index),
				ActualValue: c.room.Name,
				Suggestions: []string{
					"Increase total_square_footage",
					"Reduce room dimensions",
				},
			})
			continue
		}

		placed = append(placed, PlacedRoom{
			Room:     c.room,
			Index:    c.index,
			Category: c.category,
			X:        x,
			Z:        z,
			W:        w,
			D:        d,
		})
		x += w + InteriorWallThickness
		if d > rowDepth {
			rowDepth = d
		}
	}
	return placed
}
