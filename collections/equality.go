package collections

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Equaler is implemented by element types that define their own value
// equality. It is consulted by value comparisons (identity == false) and by
// [Array.Equal].
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher is implemented by element types that also implement [Equaler].
// Elements whose Equal method reports true must return the same Hash.
type Hasher interface {
	Hash() uint64
}

func equality[T any](identity bool) func(x, y T) bool {
	if identity {
		return identical[T]
	}
	return valueEqual[T]
}

// identical reports whether x and y are the same object.
func identical[T any](x, y T) bool {
	ax, ay := any(x), any(y)
	if ax == nil || ay == nil {
		return ax == nil && ay == nil
	}
	vx, vy := reflect.ValueOf(ax), reflect.ValueOf(ay)
	if vx.Type() != vy.Type() {
		return false
	}
	switch vx.Kind() {
	case reflect.Slice:
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return vx.Pointer() == vy.Pointer()
	}
	if !vx.Comparable() || !vy.Comparable() {
		return false
	}
	return ax == ay
}

// valueEqual reports whether x and y are logically equal.
func valueEqual[T any](x, y T) bool {
	if eq, ok := any(x).(Equaler[T]); ok {
		return eq.Equal(y)
	}
	return reflect.DeepEqual(x, y)
}

// Equal reports whether a and other are both ordered and hold pairwise equal
// elements (by value) in the same order.
//
// An unordered array is only ever equal to itself, i.e. when other is the
// same *Array. A structurally identical copy of an unordered array, or an
// ordered array compared with an unordered one, is never equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == other {
		return true
	}
	if other == nil || !a.ordered || !other.ordered {
		return false
	}
	if a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !valueEqual(a.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit hash consistent with [Array.Equal].
//
// For an ordered array it is a BLAKE2b digest of the elements in order.
// Elements are walked the way [reflect.DeepEqual] compares them: pointers
// are followed, map entries are combined independently of iteration order
// and negative zero hashes like zero. An element type with its own Equal
// method must also implement [Hasher], otherwise equal elements may hash
// differently. For an unordered array the hash identifies the container
// itself.
func (a *Array[T]) Hash() uint64 {
	if !a.ordered {
		h := newDigest()
		fmt.Fprintf(h, "%p", a)
		return sum64(h)
	}
	vh := &valueHasher{w: newDigest(), seen: make(map[visit]bool)}
	for i := 0; i < a.size; i++ {
		if hs, ok := elementHasher(a.items[i]); ok {
			vh.uint(hs.Hash())
			continue
		}
		vh.value(reflect.ValueOf(any(a.items[i])))
	}
	return sum64(vh.w)
}

// elementHasher returns x as a Hasher when x also defines Equal, which is
// the only case where valueEqual does not fall back to reflect.DeepEqual.
func elementHasher[T any](x T) (Hasher, bool) {
	if _, ok := any(x).(Equaler[T]); !ok {
		return nil, false
	}
	hs, ok := any(x).(Hasher)
	if !ok {
		return nil, false
	}
	if v := reflect.ValueOf(hs); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return hs, true
}

func newDigest() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func sum64(h hash.Hash) uint64 {
	return binary.LittleEndian.Uint64(h.Sum(nil))
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// valueHasher feeds a reflect.Value into a digest so that values
// reflect.DeepEqual considers equal produce the same bytes.
type valueHasher struct {
	w    hash.Hash
	buf  [8]byte
	seen map[visit]bool
}

func (vh *valueHasher) uint(x uint64) {
	binary.LittleEndian.PutUint64(vh.buf[:], x)
	vh.w.Write(vh.buf[:])
}

func (vh *valueHasher) float(f float64) {
	if f == 0 {
		f = 0 // -0 == 0
	}
	vh.uint(math.Float64bits(f))
}

// enter marks a reference as being walked. It reports false when the
// reference is already on the current path, i.e. the value is cyclic.
func (vh *valueHasher) enter(v reflect.Value) (visit, bool) {
	k := visit{ptr: v.Pointer(), typ: v.Type()}
	if k.ptr == 0 {
		return k, true
	}
	if vh.seen[k] {
		return k, false
	}
	vh.seen[k] = true
	return k, true
}

func (vh *valueHasher) value(v reflect.Value) {
	if !v.IsValid() {
		vh.uint(0)
		return
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			vh.uint(1)
		} else {
			vh.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		vh.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		vh.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		vh.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		vh.float(real(c))
		vh.float(imag(c))
	case reflect.String:
		vh.uint(uint64(v.Len()))
		io.WriteString(vh.w, v.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			vh.value(v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			vh.value(v.Field(i))
		}
	case reflect.Slice:
		k, ok := vh.enter(v)
		if !ok {
			return
		}
		vh.uint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			vh.value(v.Index(i))
		}
		delete(vh.seen, k)
	case reflect.Map:
		k, ok := vh.enter(v)
		if !ok {
			return
		}
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := &valueHasher{w: newDigest(), seen: vh.seen}
			entry.value(iter.Key())
			entry.value(iter.Value())
			sum += sum64(entry.w)
		}
		vh.uint(uint64(v.Len()))
		vh.uint(sum)
		delete(vh.seen, k)
	case reflect.Pointer:
		if v.IsNil() {
			vh.uint(0)
			return
		}
		k, ok := vh.enter(v)
		if !ok {
			return
		}
		vh.uint(1)
		vh.value(v.Elem())
		delete(vh.seen, k)
	case reflect.Interface:
		if v.IsNil() {
			vh.uint(0)
			return
		}
		e := v.Elem()
		io.WriteString(vh.w, e.Type().String())
		vh.value(e)
	case reflect.Func:
		// DeepEqual treats non-nil funcs as unequal to everything.
		if v.IsNil() {
			vh.uint(0)
		} else {
			vh.uint(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		vh.uint(uint64(v.Pointer()))
	}
}
