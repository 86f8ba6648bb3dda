package codec

// fieldReader wraps Reader with a sticky error so a block of fields can be
// read without checking each call. Once a read fails every later read
// returns the zero value and err keeps the first failure.
type fieldReader struct {
	r   *Reader
	err error
}

func (f *fieldReader) skip(n int) {
	if f.err != nil {
		return
	}
	f.err = f.r.Skip(n)
}

func (f *fieldReader) bytes(n int) []byte {
	if f.err != nil {
		return make([]byte, n)
	}
	b, err := f.r.Bytes(n)
	if err != nil {
		f.err = err
		return make([]byte, n)
	}
	return b
}

func (f *fieldReader) u8() uint8 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.Uint8()
	f.err = err
	return v
}

func (f *fieldReader) i8() int8 { return int8(f.u8()) }

func (f *fieldReader) bool() bool { return f.u8() != 0 }

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.Uint16()
	f.err = err
	return v
}

func (f *fieldReader) i16() int16 { return int16(f.u16()) }

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.Uint32()
	f.err = err
	return v
}

func (f *fieldReader) i32() int32 { return int32(f.u32()) }

func (f *fieldReader) u64() uint64 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.Uint64()
	f.err = err
	return v
}

func (f *fieldReader) i64() int64 { return int64(f.u64()) }

func (f *fieldReader) f32() float32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.Float32()
	f.err = err
	return v
}
