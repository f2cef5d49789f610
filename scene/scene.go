// Package scene implements the tile grid, wall registry and texture
// registry the renderer walks, plus the Raycaster Plus Scene (RPS) text
// format loader/writer.
package scene

import (
	"github.com/bwilk315/rpge-go/texture"
)

// Scene is a W×H grid of tile ids, a registry mapping each tile id to its
// ordered list of walls, and a texture registry shared by those walls. Tile
// id 0 is always empty and never carries walls.
type Scene struct {
	width, height int
	tiles         []int

	wallsByTile map[int][]*Wall
	tileOrder   []int

	textures     map[uint16]*texture.Texture
	textureIDs   map[string]uint16
	textureNames map[uint16]string
	nextTextureID uint16
}

// New creates an empty W×H scene with every tile set to 0.
func New(width, height int) *Scene {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Scene{
		width: width, height: height,
		tiles:        make([]int, width*height),
		wallsByTile:  make(map[int][]*Wall),
		textures:     make(map[uint16]*texture.Texture),
		textureIDs:   make(map[string]uint16),
		textureNames: make(map[uint16]string),
	}
}

func (s *Scene) Width() int  { return s.width }
func (s *Scene) Height() int { return s.height }

// InBounds reports whether (x,y) is within [0,W)×[0,H).
func (s *Scene) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Scene) index(x, y int) int {
	return s.width*(s.height-y-1) + x
}

// TileID returns the tile id at (x,y), or 0 if out of bounds.
func (s *Scene) TileID(x, y int) int {
	if !s.InBounds(x, y) {
		return 0
	}
	return s.tiles[s.index(x, y)]
}

// SetTileID sets the tile id at (x,y), returning false if out of bounds.
func (s *Scene) SetTileID(x, y, id int) bool {
	if !s.InBounds(x, y) {
		return false
	}
	s.tiles[s.index(x, y)] = id
	return true
}

// AddWall appends w to tileId's wall list, returning its index.
func (s *Scene) AddWall(tileID int, w *Wall) int {
	if _, ok := s.wallsByTile[tileID]; !ok {
		s.tileOrder = append(s.tileOrder, tileID)
	}
	s.wallsByTile[tileID] = append(s.wallsByTile[tileID], w)
	return len(s.wallsByTile[tileID]) - 1
}

// Walls returns the ordered wall list for tileId, or nil if it has none.
func (s *Scene) Walls(tileID int) []*Wall {
	return s.wallsByTile[tileID]
}

// TileIDs returns every tile id that has at least one wall, in the order
// walls were first added for it.
func (s *Scene) TileIDs() []int {
	return s.tileOrder
}

// LoadTexture loads pngPath (deduplicated by path) and returns its id. On
// failure it returns 0 and registers nothing, so any wall built with the
// returned id falls back to tint rendering; the load error is not kept.
func (s *Scene) LoadTexture(pngPath string) uint16 {
	if id, ok := s.textureIDs[pngPath]; ok {
		return id
	}
	tex, err := texture.LoadFile(pngPath)
	if err != nil {
		return 0
	}
	s.nextTextureID++
	id := s.nextTextureID
	s.textures[id] = tex
	s.textureIDs[pngPath] = id
	s.textureNames[id] = pngPath
	return id
}

// Texture returns the texture registered at texID, or nil if there is none
// (including texID 0, which always means "untextured").
func (s *Scene) Texture(texID uint16) *texture.Texture {
	if texID == 0 {
		return nil
	}
	return s.textures[texID]
}

// TextureName returns the file path a texture was loaded from, or "".
func (s *Scene) TextureName(texID uint16) string {
	return s.textureNames[texID]
}
