package typeconv

import (
	"encoding/binary"
	"math"

	"github.com/conduit-lang/typedesc/pkg/ustring"
	"github.com/x448/float16"
	"go.uber.org/zap"
)

var ne = binary.NativeEndian

func newTestConverter() (*Converter, *ustring.Table) {
	tab := ustring.NewTable()
	return NewConverter(tab, zap.NewNop()), tab
}

func int32s(vals ...int32) []byte {
	b := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		b = ne.AppendUint32(b, uint32(v))
	}
	return b
}

func int16s(vals ...int16) []byte {
	b := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		b = ne.AppendUint16(b, uint16(v))
	}
	return b
}

func uint64s(vals ...uint64) []byte {
	b := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		b = ne.AppendUint64(b, v)
	}
	return b
}

func float32s(vals ...float32) []byte {
	b := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		b = ne.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func float64s(vals ...float64) []byte {
	b := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		b = ne.AppendUint64(b, math.Float64bits(v))
	}
	return b
}

func halves(vals ...float32) []byte {
	b := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		b = ne.AppendUint16(b, float16.Fromfloat32(v).Bits())
	}
	return b
}

func handles(tab *ustring.Table, vals ...string) []byte {
	b := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		b = ne.AppendUint64(b, uint64(tab.Intern(v)))
	}
	return b
}

func hashes(tab *ustring.Table, vals ...string) []byte {
	b := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		b = ne.AppendUint64(b, uint64(tab.Hash(v)))
	}
	return b
}

func readInt32s(b []byte) []int32 {
	out := make([]int32, len(b)/4)
	for i := range out {
		out[i] = int32(ne.Uint32(b[i*4:]))
	}
	return out
}

func readFloat32s(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(ne.Uint32(b[i*4:]))
	}
	return out
}

func readStrings(tab *ustring.Table, b []byte) []string {
	out := make([]string, len(b)/8)
	for i := range out {
		out[i], _ = tab.Lookup(ustring.Handle(ne.Uint64(b[i*8:])))
	}
	return out
}
