package javac

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyScanner = (*ClassScanner)(nil)

const classMagic = 0xCAFEBABE

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// ClassScanner reads class names from the constant pools of compiled artifacts.
type ClassScanner struct{}

// NewClassScanner creates a ClassScanner.
func NewClassScanner() *ClassScanner {
	return &ClassScanner{}
}

// References returns the sorted internal names ("com/acme/Widget") referenced by the
// artifact of classPath and by its nested classes. The scanned classes themselves are
// excluded. A unit without compiled output references nothing.
func (s *ClassScanner) References(outputDir, classPath string) ([]string, error) {
	primary := filepath.Join(outputDir, filepath.FromSlash(classPath)+domain.ClassExt)
	files := []string{primary}

	nested, err := filepath.Glob(filepath.Join(outputDir, filepath.FromSlash(classPath)+"$*"+domain.ClassExt))
	if err == nil {
		slices.Sort(nested)
		files = append(files, nested...)
	}

	own := make(map[string]struct{})
	refs := make(map[string]struct{})
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrClassFileInvalid.Error()), "path", file)
		}

		self, names, err := parseClassFile(data)
		if err != nil {
			return nil, zerr.With(err, "path", file)
		}
		own[self] = struct{}{}
		for _, name := range names {
			refs[name] = struct{}{}
		}
	}

	out := make([]string, 0, len(refs))
	for name := range refs {
		if _, ok := own[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out, nil
}

type constant struct {
	tag  byte
	utf8 string
	// a and b are the first and second index operands, where the tag has them.
	a, b uint16
}

// parseClassFile returns the class's own internal name and every class name found in
// its constant pool, both as class entries and inside type descriptors.
func parseClassFile(data []byte) (string, []string, error) {
	r := &classReader{data: data}

	if magic := r.u4(); magic != classMagic {
		return "", nil, zerr.With(domain.ErrClassFileInvalid, "reason", "bad magic")
	}
	r.skip(4) // minor and major version

	count := int(r.u2())
	pool := make([]constant, count)
	for i := 1; i < count && r.err == nil; i++ {
		c := constant{tag: r.u1()}
		switch c.tag {
		case tagUtf8:
			c.utf8 = string(r.bytes(int(r.u2())))
		case tagClass, tagString, tagMethodType, tagModule, tagPackage:
			c.a = r.u2()
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			c.a, c.b = r.u2(), r.u2()
		case tagInteger, tagFloat:
			r.skip(4)
		case tagLong, tagDouble:
			r.skip(8)
			pool[i] = c
			i++
			continue
		case tagMethodHandle:
			r.skip(1)
			c.a = r.u2()
		default:
			return "", nil, zerr.With(domain.ErrClassFileInvalid, "reason", "unknown constant tag")
		}
		pool[i] = c
	}
	if r.err != nil {
		return "", nil, zerr.With(domain.ErrClassFileInvalid, "reason", "truncated constant pool")
	}

	r.skip(2) // access flags
	thisIndex := int(r.u2())
	if r.err != nil || thisIndex <= 0 || thisIndex >= count || pool[thisIndex].tag != tagClass {
		return "", nil, zerr.With(domain.ErrClassFileInvalid, "reason", "missing this_class")
	}
	self := utf8At(pool, int(pool[thisIndex].a))

	var names []string
	for _, c := range pool {
		switch c.tag {
		case tagClass:
			name := utf8At(pool, int(c.a))
			if strings.HasPrefix(name, "[") {
				names = append(names, descriptorClasses(name)...)
			} else if name != "" {
				names = append(names, name)
			}
		case tagNameAndType:
			names = append(names, descriptorClasses(utf8At(pool, int(c.b)))...)
		case tagMethodType:
			names = append(names, descriptorClasses(utf8At(pool, int(c.a)))...)
		case tagUtf8:
			// Field and method declarations keep their descriptors as bare entries.
			if looksLikeDescriptor(c.utf8) {
				names = append(names, descriptorClasses(c.utf8)...)
			}
		}
	}
	return self, names, nil
}

func utf8At(pool []constant, index int) string {
	if index <= 0 || index >= len(pool) || pool[index].tag != tagUtf8 {
		return ""
	}
	return pool[index].utf8
}

func looksLikeDescriptor(s string) bool {
	if strings.HasPrefix(s, "(") {
		return strings.Contains(s, ")")
	}
	return strings.HasPrefix(s, "L") && strings.HasSuffix(s, ";") && !strings.ContainsAny(s, " .")
}

// descriptorClasses extracts the object types named in a field or method descriptor.
func descriptorClasses(desc string) []string {
	var out []string
	for {
		start := strings.IndexByte(desc, 'L')
		if start == -1 {
			return out
		}
		end := strings.IndexByte(desc[start:], ';')
		if end == -1 {
			return out
		}
		name := desc[start+1 : start+end]
		if name != "" && !strings.ContainsAny(name, "()[") {
			out = append(out, name)
		}
		desc = desc[start+end+1:]
	}
}

// classReader reads big-endian values, remembering the first out-of-bounds read.
type classReader struct {
	data []byte
	off  int
	err  error
}

var errTruncated = errors.New("truncated")

func (r *classReader) bytes(n int) []byte {
	if r.err != nil || r.off+n > len(r.data) {
		r.err = errTruncated
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *classReader) skip(n int) {
	r.bytes(n)
}

func (r *classReader) u1() byte {
	b := r.bytes(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *classReader) u2() uint16 {
	b := r.bytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *classReader) u4() uint32 {
	b := r.bytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}
