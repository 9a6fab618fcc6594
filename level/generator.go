// Package level turns portfolio content into a placed, playable level.
package level

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/content"
	"github.com/automoto/retrofolio/textures"
)

// Bookmark names shared with the HUD and host
const (
	BookmarkAbout      = "about"
	BookmarkExperience = "experience"
	BookmarkSkills     = "skills"
	BookmarkContact    = "contact"
)

// builder accumulates entities left to right behind a horizontal cursor.
type builder struct {
	data    *Data
	cursor  float64
	groundY float64
}

// Generate builds the level for a content snapshot. It is pure: the same content always yields
// the same entities, in the same order, at the same positions.
func Generate(p *content.Portfolio) *Data {
	b := &builder{
		data: &Data{
			Bookmarks: map[string]float64{},
		},
		cursor:  cfg.Level.StartX,
		groundY: cfg.Level.GroundY,
	}

	b.add(Entity{
		ID: "wall_left", Kind: KindGround,
		X: -50, Y: 0, W: 50, H: 1000,
		Solid: true, Color: cfg.Level.WallColor,
	})

	b.origin(p)
	exp, hasExp := p.Primary()
	b.companyHeader(exp, hasExp)
	if hasExp {
		for i, s := range qualifyingSections(exp) {
			b.zone(i, s)
		}
	}
	b.arsenal(p.TechStack)
	b.finalChallenge(p)
	b.fillGround()

	for _, e := range b.data.Entities {
		switch e.Kind {
		case KindCoin, KindQuestion:
			b.data.TotalAchievements++
		case KindGoomba:
			if e.Boss {
				b.data.TotalAchievements++
			}
		case KindFlag:
			b.data.TotalFlags++
		}
	}
	// Collecting every flag is an achievement of its own
	if b.data.TotalFlags > 0 {
		b.data.TotalAchievements++
	}
	return b.data
}

// qualifyingSections drops the redundant section and caps the rest.
func qualifyingSections(exp content.Experience) []content.Section {
	var out []content.Section
	for _, s := range exp.OrderedSections() {
		if s.ID == cfg.Level.RedundantSectionID {
			continue
		}
		out = append(out, s)
		if len(out) == cfg.Level.MaxZones {
			break
		}
	}
	return out
}

func (b *builder) add(e Entity) {
	e.Active = true
	b.data.Entities = append(b.data.Entities, e)
}

func (b *builder) bookmark(name string) {
	if _, ok := b.data.Bookmarks[name]; !ok {
		b.data.BookmarkOrder = append(b.data.BookmarkOrder, name)
	}
	b.data.Bookmarks[name] = b.cursor
}

func (b *builder) billboard(id, label, body, section string, w, h float64) {
	b.add(Entity{
		ID: id, Kind: KindBillboard,
		X: b.cursor, Y: b.groundY - h - 60, W: w, H: h,
		Color: cfg.Level.BillboardColor,
		Label: label, Content: body, SectionID: section,
	})
}

func (b *builder) coin(id string, x float64, label, body, section string) *Entity {
	b.add(Entity{
		ID: id, Kind: KindCoin,
		X: x, Y: b.groundY - 80, W: 32, H: 32,
		Color: cfg.Level.CoinColor, TextureID: textures.Coin,
		Label: label, Content: body, SectionID: section,
	})
	return &b.data.Entities[len(b.data.Entities)-1]
}

// origin is the "who is this" zone: identity billboard plus one informational pickup.
func (b *builder) origin(p *content.Portfolio) {
	b.bookmark(BookmarkAbout)
	body := joinLines(p.Profile.Role, p.Profile.Location)
	b.billboard("sign_hero", strings.ToUpper(p.Profile.Name), body, BookmarkAbout, 180, 100)

	if len(p.Profile.Attributes) > 0 {
		attr := p.Profile.Attributes[0]
		b.coin("coin_about", b.cursor+220, shortLabel(attr), attr, BookmarkAbout)
	}
	b.cursor += 380
}

func (b *builder) companyHeader(exp content.Experience, ok bool) {
	b.bookmark(BookmarkExperience)
	if !ok {
		return
	}
	b.billboard("sign_company", strings.ToUpper(exp.Company), joinLines(exp.Role, exp.Period), BookmarkExperience, 160, 90)
	b.cursor += 260
}

// zone lays out one content section. Every entity it places records the section id.
func (b *builder) zone(index int, s content.Section) {
	start := b.cursor
	b.bookmark(s.ID)

	summary := joinLines(s.Preview.TopMetrics...)
	if summary == "" && len(s.Content.Bullets) > 0 {
		summary = s.Content.Bullets[0]
	}
	b.billboard("sign_"+s.ID, strings.ToUpper(s.Title), summary, s.ID, 180, 100)
	b.cursor += 220

	metrics := s.Content.Metrics
	if len(metrics) > 2 {
		metrics = metrics[:2]
	}
	for i, m := range metrics {
		c := b.coin(fmt.Sprintf("coin_%s_%d", s.ID, i), b.cursor+float64(i)*90, m.Value, strings.TrimSpace(m.Value+" "+m.Label), s.ID)
		c.Y -= float64(i) * 40
		c.MetricLabel = m.Label
	}
	if len(metrics) > 0 {
		b.cursor += float64(len(metrics)) * 90
	}

	if len(s.Content.Bullets) > 0 {
		b.blockRow(s)
	}

	hostile := -1
	if len(s.Content.SubSections) > 0 {
		sub := s.Content.SubSections[0]
		defeat := ""
		if len(sub.Bullets) > 0 {
			defeat = sub.Bullets[0]
		}
		speeds := cfg.Level.PatrolSpeeds
		b.add(Entity{
			ID: "challenge_" + s.ID, Kind: KindGoomba,
			X: b.cursor + 40, Y: b.groundY - 40, W: 40, H: 40,
			VX:    speeds[index%len(speeds)],
			Color: cfg.Level.HostileColor, TextureID: textures.Goomba,
			Label: shortLabel(sub.Title), DefeatMessage: defeat, SectionID: s.ID,
		})
		hostile = len(b.data.Entities) - 1
		b.cursor += 160
	}

	if s.ID == cfg.Level.FlagSectionID {
		b.flags(s)
	}

	if s.ID == cfg.Level.PowerUpSectionID {
		b.add(Entity{
			ID: "power_" + s.ID, Kind: KindMushroom,
			X: b.cursor, Y: b.groundY - 70, W: 40, H: 40,
			Color: cfg.Level.PowerUpColor, TextureID: textures.Mushroom,
			Label: shortLabel(s.Title), Content: s.Title + " Skill Unlocked!", SectionID: s.ID,
		})
		b.cursor += 100
	}

	b.add(Entity{
		ID: "pipe_" + s.ID, Kind: KindPipe,
		X: b.cursor, Y: b.groundY - 100, W: 80, H: 100,
		Color: cfg.Level.PipeColor, TextureID: textures.Pipe, SectionID: s.ID,
	})
	b.cursor += 80

	if hostile >= 0 {
		h := &b.data.Entities[hostile]
		h.PatrolMin = start
		h.PatrolMax = b.cursor
	}
	b.cursor += cfg.Level.ZoneGap
}

// blockRow places a question block between two bricks, high enough to be hit with a jump.
func (b *builder) blockRow(s content.Section) {
	y := b.groundY - 150
	size := cfg.Level.TileSize
	subTitle := func(i int) string {
		if i < len(s.Content.SubSections) {
			return s.Content.SubSections[i].Title
		}
		return ""
	}

	b.add(Entity{
		ID: fmt.Sprintf("brick_%s_0", s.ID), Kind: KindBrick,
		X: b.cursor, Y: y, W: size, H: size, Solid: true,
		Color: cfg.Level.BrickColor, TextureID: textures.Brick,
		Content: subTitle(1), SectionID: s.ID,
	})
	b.add(Entity{
		ID: "block_" + s.ID, Kind: KindQuestion,
		X: b.cursor + size, Y: y, W: size, H: size, Solid: true,
		Color: cfg.Level.QuestionColor, TextureID: textures.Question,
		Label: "?", Content: s.Content.Bullets[0], SectionID: s.ID,
	})
	b.add(Entity{
		ID: fmt.Sprintf("brick_%s_1", s.ID), Kind: KindBrick,
		X: b.cursor + 2*size, Y: y, W: size, H: size, Solid: true,
		Color: cfg.Level.BrickColor, TextureID: textures.Brick,
		Content: subTitle(2), SectionID: s.ID,
	})
	b.cursor += 3*size + 50
}

func (b *builder) flags(s content.Section) {
	codes := s.Content.Countries
	if len(codes) == 0 {
		codes = cfg.Level.DefaultCountries
	}
	if len(codes) > cfg.Level.MaxFlags {
		codes = codes[:cfg.Level.MaxFlags]
	}
	for i, code := range codes {
		code = strings.ToUpper(code)
		b.add(Entity{
			ID: fmt.Sprintf("flag_%s_%d", s.ID, i), Kind: KindFlag,
			X: b.cursor + float64(i)*40, Y: b.groundY - 32, W: 24, H: 32,
			Color: cfg.Level.FlagColor, TextureID: textures.Flag,
			Label: code, CountryCode: code, SectionID: s.ID,
		})
	}
	b.cursor += float64(len(codes))*40 + 40
}

func (b *builder) arsenal(stack content.TechStack) {
	b.bookmark(BookmarkSkills)
	if len(stack.Categories) == 0 {
		return
	}
	lines := make([]string, 0, len(stack.Categories))
	for _, c := range stack.Categories {
		names := make([]string, 0, len(c.Technologies))
		for _, t := range c.Technologies {
			names = append(names, t.Name)
		}
		lines = append(lines, c.Name+": "+strings.Join(names, ", "))
	}
	b.billboard("sign_skills", "SKILLS", joinLines(lines...), BookmarkSkills, 180, 100)
	b.cursor += 260
}

// finalChallenge: narrative billboard, hammer, boss, castle, victory billboard.
func (b *builder) finalChallenge(p *content.Portfolio) {
	b.bookmark(BookmarkContact)

	story := p.Profile.Summary
	if story == "" {
		story = "One last challenge stands in the way."
	}
	b.billboard("sign_final", "FINAL CHALLENGE", story, BookmarkContact, 180, 100)
	b.cursor += 220

	b.add(Entity{
		ID: "power_hammer", Kind: KindMushroom,
		X: b.cursor, Y: b.groundY - 70, W: 40, H: 40,
		Color: cfg.Level.PowerUpColor, TextureID: textures.Hammer,
		Label: "HAMMER", Content: "Hammer acquired! Take on the final boss.",
		SectionID: BookmarkContact, Grant: GrantHammer,
	})
	b.cursor += 120

	start := b.cursor
	b.add(Entity{
		ID: "boss", Kind: KindGoomba,
		X: b.cursor + 200, Y: b.groundY - 80, W: 80, H: 80,
		VX: cfg.Level.BossSpeed, Boss: true,
		Color: cfg.Level.HostileColor, TextureID: textures.Boss,
		Label:         "FINAL BOSS",
		DefeatMessage: fmt.Sprintf("Final boss defeated! %s is ready for the next challenge.", p.Profile.Name),
		SectionID:     BookmarkContact,
		PatrolMin:     start,
		PatrolMax:     start + 340,
	})
	b.cursor += 380

	b.add(Entity{
		ID: "castle", Kind: KindCastle,
		X: b.cursor, Y: b.groundY - 150, W: 150, H: 150, Solid: true,
		Color: cfg.Level.CastleColor, TextureID: textures.Castle,
		SectionID: BookmarkContact,
	})
	b.cursor += 210

	status := ""
	if p.Contact.OpenToWork {
		status = "Open to Work"
	}
	b.billboard("sign_victory", "HIRE ME!", joinLines(p.Contact.Email, status), BookmarkContact, 170, 90)
	b.cursor += 200
}

// fillGround lays contiguous tiles from the origin to just past the cursor, then sky decor.
func (b *builder) fillGround() {
	tile := cfg.Level.TileSize
	end := b.cursor + cfg.Level.GroundTail
	b.data.Width = end

	for x := 0.0; x < end; x += tile {
		b.add(Entity{
			ID: fmt.Sprintf("g_%d", int(x)), Kind: KindGround,
			X: x, Y: b.groundY, W: tile, H: tile, Solid: true,
			Color: cfg.Level.GroundColor, TextureID: textures.Ground,
		})
		b.add(Entity{
			ID: fmt.Sprintf("g_deep_%d", int(x)), Kind: KindScenery,
			X: x, Y: b.groundY + tile, W: tile, H: cfg.Level.DirtDepth,
			Color: cfg.Level.DirtColor,
		})
	}

	for i, x := 0, 0.0; x < end; i, x = i+1, x+cfg.Level.CloudSpacing {
		b.add(Entity{
			ID: fmt.Sprintf("cloud_%d", int(x)), Kind: KindCloud,
			X: x + 80, Y: 50 + float64(i%4)*25, W: 150, H: 80,
			Color: cfg.Level.CloudColor, TextureID: textures.Cloud,
		})
	}
	for x := 200.0; x < end; x += cfg.Level.BushSpacing {
		b.add(Entity{
			ID: fmt.Sprintf("bush_%d", int(x)), Kind: KindBush,
			X: x, Y: b.groundY - 50, W: 100, H: 50,
			Color: cfg.Level.BushColor, TextureID: textures.Bush,
		})
	}
}

func joinLines(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

// shortLabel turns free text into a sprite caption: first word, upper case, at most 8 runes.
func shortLabel(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	label := []rune(strings.ToUpper(fields[0]))
	if len(label) > 8 {
		label = label[:8]
	}
	return string(label)
}
