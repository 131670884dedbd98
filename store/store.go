package store

import (
	"encoding/binary"
	"errors"

	"github.com/dgraph-io/badger/v3"
	pkgerrors "github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snakefile"
)

var (
	// ErrFrameNotFound is returned for a frame index never stored.
	ErrFrameNotFound = errors.New("store: frame not found")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store: closed")
)

var (
	framePrefix = []byte("frame/")
	metaKey     = []byte("meta")
)

type curveRecord struct {
	Open        bool         `msgpack:"open"`
	Points      [][3]float64 `msgpack:"points"`
	Intensities []float64    `msgpack:"intensities,omitempty"`
}

type frameRecord struct {
	Curves    []curveRecord `msgpack:"curves"`
	Junctions [][3]float64  `msgpack:"junctions,omitempty"`
}

type metaRecord struct {
	Image   string             `msgpack:"image"`
	Headers []snakefile.Header `msgpack:"headers"`
}

// Store is a frame database. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database at path; "" keeps it in memory.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.DetectConflicts = false
	if path == "" {
		opts.InMemory = true
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open store %q", path)
	}

	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func frameKey(i int) []byte {
	k := make([]byte, len(framePrefix)+8)
	copy(k, framePrefix)
	binary.BigEndian.PutUint64(k[len(framePrefix):], uint64(i))

	return k
}

func toArray(p geom.Point) [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func fromArray(a [3]float64) geom.Point { return geom.P(a[0], a[1], a[2]) }

func encodeFrame(f snakefile.Frame) ([]byte, error) {
	var rec frameRecord
	for _, c := range f.Curves {
		cr := curveRecord{Open: c.Open, Intensities: c.Intensities}
		for _, p := range c.Points {
			cr.Points = append(cr.Points, toArray(p))
		}
		rec.Curves = append(rec.Curves, cr)
	}
	for _, j := range f.Junctions {
		rec.Junctions = append(rec.Junctions, toArray(j))
	}

	return msgpack.Marshal(&rec)
}

func decodeFrame(b []byte) (snakefile.Frame, error) {
	var rec frameRecord
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return snakefile.Frame{}, err
	}
	var f snakefile.Frame
	for _, cr := range rec.Curves {
		c := snakefile.Curve{Open: cr.Open}
		if len(cr.Intensities) > 0 {
			c.Intensities = cr.Intensities
		}
		for _, a := range cr.Points {
			c.Points = append(c.Points, fromArray(a))
		}
		f.Curves = append(f.Curves, c)
	}
	for _, a := range rec.Junctions {
		f.Junctions = append(f.Junctions, fromArray(a))
	}

	return f, nil
}

// PutFrame stores frame i, replacing any previous version.
func (s *Store) PutFrame(i int, f snakefile.Frame) error {
	if s.db == nil {
		return ErrClosed
	}
	buf, err := encodeFrame(f)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode frame %d", i)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(frameKey(i), buf)
	})
}

// Frame loads frame i.
func (s *Store) Frame(i int) (snakefile.Frame, error) {
	if s.db == nil {
		return snakefile.Frame{}, ErrClosed
	}
	var f snakefile.Frame
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(frameKey(i))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return pkgerrors.Wrapf(ErrFrameNotFound, "frame %d", i)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			f, err = decodeFrame(val)
			return err
		})
	})

	return f, err
}

// Frames loads every stored frame in index order, with their indices.
func (s *Store) Frames() ([]int, []snakefile.Frame, error) {
	if s.db == nil {
		return nil, nil, ErrClosed
	}
	var idx []int
	var frames []snakefile.Frame
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   16,
			Prefix:         framePrefix,
		})
		defer it.Close()
		for it.Seek(framePrefix); it.ValidForPrefix(framePrefix); it.Next() {
			item := it.Item()
			i := int(binary.BigEndian.Uint64(item.Key()[len(framePrefix):]))
			err := item.Value(func(val []byte) error {
				f, err := decodeFrame(val)
				if err != nil {
					return pkgerrors.Wrapf(err, "decode frame %d", i)
				}
				idx = append(idx, i)
				frames = append(frames, f)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return idx, frames, err
}

// PutMeta records the image name and parameter headers of the run.
func (s *Store) PutMeta(image string, headers []snakefile.Header) error {
	if s.db == nil {
		return ErrClosed
	}
	buf, err := msgpack.Marshal(&metaRecord{Image: image, Headers: headers})
	if err != nil {
		return pkgerrors.Wrap(err, "encode meta")
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey, buf)
	})
}

// Document assembles a sequence document from the metadata and all frames.
// Missing metadata leaves Image and Headers empty.
func (s *Store) Document() (*snakefile.Document, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	doc := &snakefile.Document{Sequence: true}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var m metaRecord
			if err := msgpack.Unmarshal(val, &m); err != nil {
				return pkgerrors.Wrap(err, "decode meta")
			}
			doc.Image, doc.Headers = m.Image, m.Headers
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	_, frames, err := s.Frames()
	if err != nil {
		return nil, err
	}
	doc.Frames = frames

	return doc, nil
}
