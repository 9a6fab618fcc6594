package level

import "image/color"

// Kind is the closed set of entity variants. Physics and rendering switch over it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindGround
	KindBrick
	KindQuestion
	KindPipe
	KindCoin
	KindGoomba
	KindMushroom
	KindCastle
	KindCloud
	KindBush
	KindScenery
	KindBillboard
	KindParticle
	KindText
	KindFlag
	KindUsed
	kindCount
)

var kindNames = [...]string{
	KindPlayer:    "player",
	KindGround:    "ground",
	KindBrick:     "brick",
	KindQuestion:  "question",
	KindPipe:      "pipe",
	KindCoin:      "coin",
	KindGoomba:    "goomba",
	KindMushroom:  "mushroom",
	KindCastle:    "castle",
	KindCloud:     "cloud",
	KindBush:      "bush",
	KindScenery:   "scenery",
	KindBillboard: "billboard",
	KindParticle:  "particle",
	KindText:      "text",
	KindFlag:      "flag",
	KindUsed:      "used",
}

// Fails to compile when a kind is added without a name.
var _ = [1]struct{}{}[len(kindNames)-int(kindCount)]

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Background kinds are drawn before everything else.
func (k Kind) Background() bool {
	switch k {
	case KindCloud, KindBush, KindScenery:
		return true
	}
	return false
}

// Grant is what a power-up gives besides score.
type Grant uint8

const (
	GrantNone Grant = iota
	GrantHammer
)

// Entity is one placed simulation object. Positions are world pixels, y grows downward.
type Entity struct {
	ID   string
	Kind Kind

	X, Y, W, H float64
	VX, VY     float64

	Active  bool
	Solid   bool
	Gravity bool

	Color     color.RGBA
	TextureID string

	Label         string
	Content       string
	SectionID     string
	DefeatMessage string
	MetricLabel   string
	CountryCode   string

	Life        float64
	FacingRight bool

	// Hostiles reverse at these world x bounds
	PatrolMin float64
	PatrolMax float64
	Boss      bool

	Grant Grant
}

func (e *Entity) Right() float64  { return e.X + e.W }
func (e *Entity) Bottom() float64 { return e.Y + e.H }

// Overlaps reports strict AABB overlap. Touching edges do not overlap.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.X < o.X+o.W && e.X+e.W > o.X &&
		e.Y < o.Y+o.H && e.Y+e.H > o.Y
}

// Data is the generator's output. The engine takes ownership of Entities.
type Data struct {
	Entities          []Entity
	Bookmarks         map[string]float64
	BookmarkOrder     []string
	TotalAchievements int
	TotalFlags        int
	Width             float64
}

// Bookmark returns the x coordinate recorded under name.
func (d *Data) Bookmark(name string) (float64, bool) {
	x, ok := d.Bookmarks[name]
	return x, ok
}

// Clone returns a deep copy so a level can be reloaded without regenerating it.
func (d *Data) Clone() *Data {
	c := *d
	c.Entities = append([]Entity(nil), d.Entities...)
	c.Bookmarks = make(map[string]float64, len(d.Bookmarks))
	for k, v := range d.Bookmarks {
		c.Bookmarks[k] = v
	}
	c.BookmarkOrder = append([]string(nil), d.BookmarkOrder...)
	return &c
}
