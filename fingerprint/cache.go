/*
 * cache.go, part of gomlpot
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * gomlpot is developed at the Universidad de Santiago de Chile (USACH)
 *
*/

package fingerprint

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

const cacheVersion = 1

// cacheRecord is the on-disk form of a computed feature space: a
// zstd-compressed gob stream. Kernel records where the flat reference
// space was requested along the per-structure one; since the flat view
// is recoverable from the grouped data, only the flag is stored. IDs
// keeps the order the structures were stored in, which Data, a map,
// does not.
type cacheRecord struct {
	Version int
	Kernel  bool
	IDs     []string
	Data    map[string][]AtomVec
}

func writeCache(path string, fs *FeatureSpace, kernel bool) error {
	f, err := os.Create(path)
	if err != nil {
		return CacheError{err.Error(), []string{"writeCache"}}
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return CacheError{err.Error(), []string{"writeCache"}}
	}
	rec := cacheRecord{Version: cacheVersion, Kernel: kernel, IDs: fs.ids, Data: fs.data}
	if err := gob.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		return CacheError{err.Error(), []string{"writeCache"}}
	}
	if err := zw.Close(); err != nil {
		return CacheError{err.Error(), []string{"writeCache"}}
	}
	return nil
}

func readCache(path string) (*cacheRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CacheError{err.Error(), []string{"readCache"}}
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, CacheError{err.Error(), []string{"readCache"}}
	}
	defer zr.Close()
	rec := new(cacheRecord)
	if err := gob.NewDecoder(zr).Decode(rec); err != nil {
		return nil, CacheError{err.Error(), []string{"readCache"}}
	}
	if rec.Version != cacheVersion {
		return nil, CacheError{fmt.Sprintf("cache format version %d, want %d", rec.Version, cacheVersion), []string{"readCache"}}
	}
	return rec, nil
}

// serve tries to satisfy a request for the given structures from the
// record. It can serve the exact stored set or any subset of it, in the
// requested order; a single requested structure missing from the record
// means a miss, as does asking for a reference space from a record
// written without one.
func (rec *cacheRecord) serve(ids []string, kernel bool) (*FeatureSpace, *ReferenceSpace, bool) {
	if kernel && !rec.Kernel {
		return nil, nil, false
	}
	fs := &FeatureSpace{ids: make([]string, 0, len(ids)), data: make(map[string][]AtomVec, len(ids))}
	for _, id := range ids {
		atoms, ok := rec.Data[id]
		if !ok {
			return nil, nil, false
		}
		fs.ids = append(fs.ids, id)
		fs.data[id] = atoms
	}
	var rs *ReferenceSpace
	if kernel {
		rs = fs.flatten(FromCache)
	}
	return fs, rs, true
}
