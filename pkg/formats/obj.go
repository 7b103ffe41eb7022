package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// OBJ format errors.
var (
	ErrOBJSyntax          = errors.New("malformed OBJ record")
	ErrOBJFaceArity       = errors.New("OBJ face is not a triangle")
	ErrOBJIndexOutOfRange = errors.New("OBJ index out of range")
)

// OBJOptions selects the parser variant.
type OBJOptions struct {
	// Strict accepts only "f p/t/n p/t/n p/t/n" faces. Any other face line is
	// skipped and reported as a warning instead of failing the parse.
	// Normals are not read in strict mode.
	Strict bool
}

// OBJCorner is one face corner. Indices are 1-based; 0 means absent.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
	Line     int // source line of the face
}

// OBJWarning describes a face line the strict parser skipped.
type OBJWarning struct {
	Line   int
	Text   string
	Reason string
}

// Error implements error.
func (w OBJWarning) Error() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}

// OBJ is a parsed mesh description: three attribute pools plus the face
// corners that index into them, in file order.
type OBJ struct {
	Positions [][3]float32
	TexCoords [][2]float32
	Normals   [][3]float32
	Corners   []OBJCorner
	Warnings  []OBJWarning
}

// FaceCount returns the number of triangles.
func (o *OBJ) FaceCount() int {
	return len(o.Corners) / 3
}

// Diagnostics combines all warnings into one error, or nil if there are none.
func (o *OBJ) Diagnostics() error {
	var err error
	for _, w := range o.Warnings {
		err = multierr.Append(err, w)
	}
	return err
}

// Validate checks that every present index refers to an existing pool entry.
func (o *OBJ) Validate() error {
	for i, c := range o.Corners {
		if err := checkIndex("position", c.Position, len(o.Positions), i, c.Line); err != nil {
			return err
		}
		if c.TexCoord != 0 {
			if err := checkIndex("texcoord", c.TexCoord, len(o.TexCoords), i, c.Line); err != nil {
				return err
			}
		}
		if c.Normal != 0 {
			if err := checkIndex("normal", c.Normal, len(o.Normals), i, c.Line); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkIndex(kind string, idx, size, corner, line int) error {
	if idx < 1 || idx > size {
		return fmt.Errorf("%w: line %d corner %d: %s %d of %d", ErrOBJIndexOutOfRange, line, corner, kind, idx, size)
	}
	return nil
}

// ParseOBJ parses an OBJ mesh from r.
//
// Supported records are v, vt, vn and triangular f; blank lines, comments and
// any other command are ignored. Syntax errors and, outside strict mode,
// non-triangular faces fail the whole parse. Indices are validated before
// returning.
func ParseOBJ(r io.Reader, opts OBJOptions) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: position: %w", lineNo, err)
			}
			obj.Positions = append(obj.Positions, [3]float32{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			obj.TexCoords = append(obj.TexCoords, [2]float32{v[0], v[1]})

		case "vn":
			if opts.Strict {
				continue
			}
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			obj.Normals = append(obj.Normals, normalize3(v[0], v[1], v[2]))

		case "f":
			if opts.Strict {
				corners, reason := parseStrictFace(fields[1:], lineNo)
				if reason != "" {
					obj.Warnings = append(obj.Warnings, OBJWarning{Line: lineNo, Text: line, Reason: reason})
					continue
				}
				obj.Corners = append(obj.Corners, corners[:]...)
				continue
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d has %d corners", ErrOBJFaceArity, lineNo, len(fields)-1)
			}
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok)
				if err != nil {
					return nil, fmt.Errorf("line %d: face corner %q: %w", lineNo, tok, err)
				}
				c.Line = lineNo
				obj.Corners = append(obj.Corners, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if err := obj.Validate(); err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseOBJBytes parses an OBJ mesh held in memory.
func ParseOBJBytes(data []byte, opts OBJOptions) (*OBJ, error) {
	return ParseOBJ(bytes.NewReader(data), opts)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, opts OBJOptions) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f, opts)
}

// parseCorner parses p, p/t, p/t/n or p//n.
func parseCorner(tok string) (OBJCorner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return OBJCorner{}, fmt.Errorf("%w: too many fields", ErrOBJSyntax)
	}
	if parts[0] == "" {
		return OBJCorner{}, fmt.Errorf("%w: missing position index", ErrOBJSyntax)
	}

	var idx [3]int
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return OBJCorner{}, fmt.Errorf("%w: %v", ErrOBJSyntax, err)
		}
		// Relative indices are not supported; report them as out of range.
		if n < 1 {
			return OBJCorner{}, fmt.Errorf("%w: index %d", ErrOBJIndexOutOfRange, n)
		}
		idx[i] = n
	}
	return OBJCorner{Position: idx[0], TexCoord: idx[1], Normal: idx[2]}, nil
}

// parseStrictFace expects exactly nine integers in p/t/n form. A non-empty
// reason means the line must be skipped. The normal index is dropped since
// strict meshes carry no normals.
func parseStrictFace(tokens []string, lineNo int) ([3]OBJCorner, string) {
	var corners [3]OBJCorner
	if len(tokens) != 3 {
		return corners, fmt.Sprintf("expected 3 corners, got %d", len(tokens))
	}
	for i, tok := range tokens {
		parts := strings.Split(tok, "/")
		if len(parts) != 3 {
			return corners, fmt.Sprintf("corner %q is not p/t/n", tok)
		}
		var idx [3]int
		for j, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				return corners, fmt.Sprintf("corner %q is not p/t/n", tok)
			}
			idx[j] = n
		}
		corners[i] = OBJCorner{Position: idx[0], TexCoord: idx[1], Line: lineNo}
	}
	return corners, ""
}

// parseFloats reads the first n fields as float32. Extra fields (such as the
// optional w component) are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrOBJSyntax, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOBJSyntax, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func normalize3(x, y, z float32) [3]float32 {
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return [3]float32{}
	}
	return [3]float32{x / l, y / l, z / l}
}
