package typeconv

import (
	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/conduit-lang/typedesc/pkg/ustring"
	"go.uber.org/zap"
)

// StringTable resolves the references stored in string and ustringhash
// slots. *ustring.Table implements it.
type StringTable interface {
	Intern(s string) ustring.Handle
	Lookup(h ustring.Handle) (string, bool)
	Hash(s string) ustring.Hash
	Unhash(h ustring.Hash) (string, bool)
}

// Converter renders and converts buffers against a string table. The zero
// value uses ustring.Default and discards log output.
type Converter struct {
	Strings StringTable
	Logger  *zap.Logger
}

// NewConverter returns a Converter. Nil arguments select ustring.Default and
// a no-op logger.
func NewConverter(strings StringTable, logger *zap.Logger) *Converter {
	if strings == nil {
		strings = ustring.Default
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{Strings: strings, Logger: logger}
}

var std = NewConverter(nil, nil)

// Convert converts n values with the package default converter.
func Convert(src typedesc.TypeDesc, srcBuf []byte, dst typedesc.TypeDesc, dstBuf []byte, n int) bool {
	return std.Convert(src, srcBuf, dst, dstBuf, n)
}

// ToString renders data with the package default converter.
func ToString(t typedesc.TypeDesc, data []byte, f Formatting) string {
	return std.ToString(t, data, f)
}

// Values decodes data with the package default converter.
func Values(t typedesc.TypeDesc, data []byte) ([]any, error) {
	return std.Values(t, data)
}

// Convert copies n values of type src from srcBuf into dstBuf as type dst.
// It reports false, without panicking, when no conversion exists, when a
// component cannot be converted or when a buffer is too short.
//
// Buffers are checked before anything is written. Components converted
// before a failing component remain written in dstBuf.
func (c *Converter) Convert(src typedesc.TypeDesc, srcBuf []byte, dst typedesc.TypeDesc, dstBuf []byte, n int) bool {
	c = c.ready()
	if n < 0 {
		return c.fail(src, dst, "negative count", zap.Int("n", n))
	}
	if n == 0 {
		return true
	}

	if typedesc.Equivalent(src, dst) {
		switch {
		case src.IsUnsizedArray():
			src.ArrayLen = dst.ArrayLen
		case dst.IsUnsizedArray():
			dst.ArrayLen = src.ArrayLen
		}
	}
	if src.IsUnsizedArray() || dst.IsUnsizedArray() {
		return c.fail(src, dst, "unsized array")
	}
	if !convertible(src.BaseType) || !convertible(dst.BaseType) {
		return c.fail(src, dst, "no conversion for base kind")
	}

	srcSize := typedesc.MulSize(src.Size(), n)
	dstSize := typedesc.MulSize(dst.Size(), n)
	if len(srcBuf) < srcSize || len(dstBuf) < dstSize {
		return c.fail(src, dst, "buffer too short",
			zap.Int("src_need", srcSize), zap.Int("src_have", len(srcBuf)),
			zap.Int("dst_need", dstSize), zap.Int("dst_have", len(dstBuf)))
	}

	srcCount := typedesc.MulSize(src.ScalarValueCount(), n)
	dstCount := typedesc.MulSize(dst.ScalarValueCount(), n)

	if src.BaseType == dst.BaseType && srcCount == dstCount {
		copy(dstBuf[:dstSize], srcBuf[:srcSize])
		return true
	}

	if dst.BaseType == typedesc.String && dst.ScalarValueCount() == 1 && src.ScalarValueCount() > 1 {
		f := DefaultFormatting()
		unit := src.Size()
		for i := 0; i < n; i++ {
			s := c.ToString(src, srcBuf[i*unit:(i+1)*unit], f)
			order.PutUint64(dstBuf[i*8:], uint64(c.Strings.Intern(s)))
		}
		return true
	}

	if srcCount != dstCount {
		return c.fail(src, dst, "value count mismatch",
			zap.Int("src_values", srcCount), zap.Int("dst_values", dstCount))
	}

	sb, db := src.BaseSize(), dst.BaseSize()
	for i := 0; i < srcCount; i++ {
		v, ok := c.load(src.BaseType, srcBuf[i*sb:])
		if !ok {
			return c.fail(src, dst, "unreadable source value", zap.Int("component", i))
		}
		if !c.store(dst.BaseType, dstBuf[i*db:], v) {
			return c.fail(src, dst, "component not convertible", zap.Int("component", i))
		}
	}
	return true
}

func convertible(b typedesc.BaseType) bool {
	return b > typedesc.None && b < typedesc.LastBase
}

// ready fills in the defaults of a zero Converter.
func (c *Converter) ready() *Converter {
	if c.Strings != nil && c.Logger != nil {
		return c
	}
	return NewConverter(c.Strings, c.Logger)
}

func (c *Converter) fail(src, dst typedesc.TypeDesc, reason string, fields ...zap.Field) bool {
	c.Logger.Debug("conversion failed",
		append([]zap.Field{
			zap.Stringer("from", src),
			zap.Stringer("to", dst),
			zap.String("reason", reason),
		}, fields...)...)
	return false
}
