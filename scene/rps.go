package scene

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bwilk315/rpge-go/geom"
	"github.com/bwilk315/rpge-go/texture"
)

// ErrorKind classifies why an RPS file failed to load.
type ErrorKind int

const (
	ErrFailedToRead ErrorKind = iota
	ErrOperationNotAvailable
	ErrUnknownNumberFormat
	ErrInvalidArgumentsCount
	ErrUnknownStringFormat
)

func (k ErrorKind) String() string {
	switch k {
	case ErrFailedToRead:
		return "RPS_FAILED_TO_READ"
	case ErrOperationNotAvailable:
		return "RPS_OPERATION_NOT_AVAILABLE"
	case ErrUnknownNumberFormat:
		return "RPS_UNKNOWN_NUMBER_FORMAT"
	case ErrInvalidArgumentsCount:
		return "RPS_INVALID_ARGUMENTS_COUNT"
	case ErrUnknownStringFormat:
		return "RPS_UNKNOWN_STRING_FORMAT"
	default:
		return "RPS_UNKNOWN"
	}
}

// LoadError reports the line and kind of a scene file interpretation
// failure.
type LoadError struct {
	Line int
	Kind ErrorKind
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("scene: line %d: %s", e.Line, e.Kind)
}

// LoadRPS loads a Raycaster Plus Scene text file. Texture paths inside the
// file are resolved relative to the scene file's directory.
func LoadRPS(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Line: 0, Kind: ErrFailedToRead}
	}
	defer f.Close()
	return loadRPS(f, filepath.Dir(path))
}

func loadRPS(r io.Reader, baseDir string) (*Scene, error) {
	s := New(0, 0)
	sc := bufio.NewScanner(r)
	line := 0
	wdh := -1 // world data height, counting down from the top

	for sc.Scan() {
		line++
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0][0] {
		case '#':
			continue
		case 's':
			if len(args) != 3 {
				return nil, &LoadError{line, ErrInvalidArgumentsCount}
			}
			w, err1 := strconv.ParseFloat(args[1], 64)
			h, err2 := strconv.ParseFloat(args[2], 64)
			if err1 != nil || err2 != nil {
				return nil, &LoadError{line, ErrUnknownNumberFormat}
			}
			s = New(int(w), int(h))
			wdh = s.height - 1
		case 'w':
			if wdh == -1 {
				return nil, &LoadError{line, ErrOperationNotAvailable}
			}
			if len(args) != s.width+1 {
				return nil, &LoadError{line, ErrInvalidArgumentsCount}
			}
			for x := 0; x < s.width; x++ {
				v, err := strconv.ParseFloat(args[1+x], 64)
				if err != nil {
					return nil, &LoadError{line, ErrUnknownNumberFormat}
				}
				s.SetTileID(x, wdh, int(v))
			}
			wdh--
		case 't':
			if len(args) != 21 {
				return nil, &LoadError{line, ErrInvalidArgumentsCount}
			}
			floatIdx := []int{1, 3, 4, 6, 7, 8, 9, 10, 11, 13, 15, 16, 17, 18}
			vals := make(map[int]float64, len(floatIdx))
			for _, i := range floatIdx {
				v, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return nil, &LoadError{line, ErrUnknownNumberFormat}
				}
				vals[i] = v
			}
			text := args[20]
			if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
				return nil, &LoadError{line, ErrUnknownStringFormat}
			}
			texFile := text[1 : len(text)-1]

			// Textures are deduplicated (and, on WriteRPS, re-emitted) by
			// the scene-relative path as written in the file, not by the
			// resolved absolute path, so the round-trip law in §8 holds.
			var texID uint16
			if texFile != "" {
				if id, ok := s.textureIDs[texFile]; ok {
					texID = id
				} else if tex, err := texture.LoadFile(filepath.Join(baseDir, texFile)); err == nil {
					s.nextTextureID++
					texID = s.nextTextureID
					s.textures[texID] = tex
					s.textureIDs[texFile] = texID
					s.textureNames[texID] = texFile
				}
			}

			tint := color.NRGBA{
				R: uint8(vals[15]), G: uint8(vals[16]), B: uint8(vals[17]), A: uint8(vals[18]),
			}
			f := geom.NewLinearFunc(vals[3], vals[4], vals[6], vals[7], vals[8], vals[9])
			w := NewWall(f, tint, vals[10], vals[11], texID, vals[13] != 0)
			s.AddWall(int(vals[1]), w)
		default:
			return nil, &LoadError{line, ErrOperationNotAvailable}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{line, ErrFailedToRead}
	}
	return s, nil
}

// WriteRPS re-emits s in the RPS text format. Wall texture paths are written
// exactly as loaded (scene-relative); a wall with an untextured/failed
// texture id writes an empty quoted string.
func (s *Scene) WriteRPS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "s %d %d\n", s.width, s.height); err != nil {
		return err
	}
	for y := s.height - 1; y >= 0; y-- {
		fmt.Fprint(bw, "w")
		for x := 0; x < s.width; x++ {
			fmt.Fprintf(bw, " %d", s.TileID(x, y))
		}
		fmt.Fprint(bw, "\n")
	}
	for _, tileID := range s.tileOrder {
		for _, wall := range s.wallsByTile[tileID] {
			blocks := 0
			if wall.BlocksRay {
				blocks = 1
			}
			fmt.Fprintf(bw, "t %d 0 %g %g 0 %g %g %g %g %g %g 0 %d 0 %d %d %d %d 0 \"%s\"\n",
				tileID,
				wall.Func.Slope, wall.Func.Height,
				wall.Func.XMin, wall.Func.XMax, wall.Func.YMin, wall.Func.YMax,
				wall.HMin, wall.HMax,
				blocks,
				wall.Tint.R, wall.Tint.G, wall.Tint.B, wall.Tint.A,
				s.TextureName(wall.TexID),
			)
		}
	}
	return bw.Flush()
}
