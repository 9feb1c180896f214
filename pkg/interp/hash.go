package interp

import (
	"hash/fnv"

	"github.com/funvibe/syntactic/pkg/syntax"
)

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

func mix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= prime64
		v >>= 8
	}
	return h
}

// Hash is consistent with Equal: equal trees hash alike.
func Hash[D any](n syntax.Node[D]) uint64 {
	switch t := n.(type) {
	case *syntax.Leaf[D]:
		return mix(mix(offset64, sigHash(t.Sig())), syntax.HashSymbol(t.Symbol))
	case *syntax.Apply[D]:
		return mix(mix(mix(offset64, 1), Hash(t.Fn)), Hash(t.Arg))
	}
	return offset64
}

// HashSome hashes a tree of hidden result type.
func HashSome[D any](s syntax.Some[D]) uint64 {
	return syntax.With(s, Hash[D])
}

func sigHash(sig syntax.SigRep) uint64 {
	f := fnv.New64a()
	f.Write([]byte(sig.String()))
	return f.Sum64()
}
