package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the catalog types. The types are flat
// enough that generated code would buy nothing.
var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// AssessmentMUS serializes Assessment values for storage backends.
	AssessmentMUS = assessmentMUS{}
)

var (
	_ mus.Serializer[ID]         = IDMUS
	_ mus.Serializer[Assessment] = AssessmentMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type assessmentMUS struct{}

func (assessmentMUS) Marshal(a Assessment, bs []byte) (n int) {
	n = ord.String.Marshal(a.Key, bs)
	n += ord.String.Marshal(a.Name, bs[n:])
	n += ord.String.Marshal(a.Description, bs[n:])
	n += ord.String.Marshal(string(a.TestType), bs[n:])
	n += varint.Int.Marshal(a.Duration, bs[n:])
	n += ord.Bool.Marshal(a.AdaptiveSupport, bs[n:])
	n += ord.Bool.Marshal(a.RemoteSupport, bs[n:])
	return n
}

func (assessmentMUS) Unmarshal(bs []byte) (a Assessment, n int, err error) {
	var n1 int
	if a.Key, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if a.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	var tt string
	if tt, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	a.TestType = TestType(tt)
	n += n1
	if a.Duration, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.AdaptiveSupport, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.RemoteSupport, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	return a, n, nil
}

func (assessmentMUS) Size(a Assessment) (size int) {
	size = ord.String.Size(a.Key)
	size += ord.String.Size(a.Name)
	size += ord.String.Size(a.Description)
	size += ord.String.Size(string(a.TestType))
	size += varint.Int.Size(a.Duration)
	size += ord.Bool.Size(a.AdaptiveSupport)
	size += ord.Bool.Size(a.RemoteSupport)
	return size
}

func (assessmentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 4; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for i := 0; i < 2; i++ {
		if n1, err = ord.Bool.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
