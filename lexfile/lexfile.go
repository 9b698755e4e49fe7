// Package lexfile reads and writes compiled lexicon files.
//
// File layout (integers big endian):
//
//	magic "TMLX" | version uint32
//	item table size uint64 | snappy(JSON []DictionaryItem)
//	FST size uint64 | vellum FST mapping item ID to item ordinal
//
// Open maps the file read-only; the FST is served from the mapping and
// only the item table is decoded on the heap.
package lexfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/couchbase/vellum"
	"github.com/edsrzf/mmap-go"
	"github.com/golang/snappy"

	"github.com/turkmorph/turkmorph"
)

const (
	Magic   = "TMLX"
	Version = uint32(1)

	headerSize = len(Magic) + 4
)

var (
	// ErrBadMagic is returned by Open for a file that is not a compiled
	// lexicon.
	ErrBadMagic = errors.New("lexfile: bad magic")
	// ErrVersion is returned by Open for a file written by an unknown
	// format version.
	ErrVersion = errors.New("lexfile: unsupported version")
)

// Write writes lex in compiled form to w.
func Write(w io.Writer, lex *turkmorph.RootLexicon) error {
	items := lex.Items()

	table, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	compressed := snappy.Encode(nil, table)

	ids := make([]string, len(items))
	ordinal := make(map[string]uint64, len(items))
	for i, it := range items {
		ids[i] = it.ID
		ordinal[it.ID] = uint64(i)
	}
	sort.Strings(ids)

	var fstBuf bytes.Buffer
	builder, err := vellum.New(&fstBuf, nil)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := builder.Insert([]byte(id), ordinal[id]); err != nil {
			return fmt.Errorf("fst insert %q: %w", id, err)
		}
	}
	if err := builder.Close(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(Magic)
	binary.Write(bw, binary.BigEndian, Version)
	binary.Write(bw, binary.BigEndian, uint64(len(compressed)))
	bw.Write(compressed)
	binary.Write(bw, binary.BigEndian, uint64(fstBuf.Len()))
	bw.Write(fstBuf.Bytes())
	return bw.Flush()
}

// WriteFile compiles lex into the file at path.
func WriteFile(path string, lex *turkmorph.RootLexicon) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, lex); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// File is an open compiled lexicon. Close releases the mapping; items
// returned before Close stay valid.
type File struct {
	path string
	file *os.File
	data mmap.MMap

	fst     *vellum.FST
	lexicon *turkmorph.RootLexicon
	items   []*turkmorph.DictionaryItem
}

// Open maps the compiled lexicon at path.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if stat.Size() < int64(headerSize+8) {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrBadMagic)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	f := &File{path: path, file: file, data: data}
	if err := f.parse(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *File) parse() error {
	data := []byte(f.data)
	if string(data[:len(Magic)]) != Magic {
		return ErrBadMagic
	}
	if v := binary.BigEndian.Uint32(data[len(Magic):headerSize]); v != Version {
		return fmt.Errorf("%w: %d", ErrVersion, v)
	}

	table, rest, err := section(data[headerSize:])
	if err != nil {
		return fmt.Errorf("item table: %w", err)
	}
	fstData, _, err := section(rest)
	if err != nil {
		return fmt.Errorf("fst: %w", err)
	}

	raw, err := snappy.Decode(nil, table)
	if err != nil {
		return fmt.Errorf("decompress items: %w", err)
	}
	var decoded []turkmorph.DictionaryItem
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decode items: %w", err)
	}
	f.items = make([]*turkmorph.DictionaryItem, len(decoded))
	for i, d := range decoded {
		it, err := turkmorph.NewDictionaryItem(d.Lemma, d.Root, d.Pronunciation, d.Primary, d.Secondary, d.Attributes)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		f.items[i] = it
	}
	f.lexicon = turkmorph.NewRootLexicon(f.items...)

	if f.fst, err = vellum.Load(fstData); err != nil {
		return fmt.Errorf("load fst: %w", err)
	}
	return nil
}

// section splits a length prefixed block from data.
func section(data []byte) (block, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, io.ErrUnexpectedEOF
	}
	n := binary.BigEndian.Uint64(data[:8])
	data = data[8:]
	if n > uint64(len(data)) {
		return nil, nil, io.ErrUnexpectedEOF
	}
	return data[:n], data[n:], nil
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// Lexicon returns the lexicon held by the file.
func (f *File) Lexicon() *turkmorph.RootLexicon { return f.lexicon }

// Len returns the number of items.
func (f *File) Len() int { return len(f.items) }

// Item returns the item with the given ID.
func (f *File) Item(id string) (*turkmorph.DictionaryItem, bool) {
	ord, ok, err := f.fst.Get([]byte(id))
	if err != nil || !ok || ord >= uint64(len(f.items)) {
		return nil, false
	}
	return f.items[ord], true
}

// Lookup returns every item of lemma with a range scan over the IDs
// starting with its key.
func (f *File) Lookup(lemma string) ([]*turkmorph.DictionaryItem, error) {
	start := []byte(turkmorph.NormalizeKey(lemma) + "_")
	end := prefixSuccessor(start)

	iter, err := f.fst.Iterator(start, end)
	var out []*turkmorph.DictionaryItem
	for err == nil {
		_, ord := iter.Current()
		if ord < uint64(len(f.items)) {
			out = append(out, f.items[ord])
		}
		err = iter.Next()
	}
	if err != vellum.ErrIteratorDone {
		return nil, err
	}
	return out, nil
}

func prefixSuccessor(prefix []byte) []byte {
	end := bytes.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// Close releases the file.
func (f *File) Close() error {
	if f.fst != nil {
		f.fst.Close()
		f.fst = nil
	}
	if f.data != nil {
		f.data.Unmap()
		f.data = nil
	}
	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// Load opens the compiled lexicon at path, reads its lexicon and closes
// the file.
func Load(path string) (*turkmorph.RootLexicon, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Lexicon(), nil
}
