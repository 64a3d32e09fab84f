package static

// Pair is a statically typed key/value pair. Type is a Go type expression;
// Value is opaque to the engine (the generator stores the default value
// expression there).
type Pair struct {
	Key   string
	Type  string
	Value any
}

// MergeSort returns pairs ordered by key. Every pair starts as a singleton
// run; each round merges neighbouring runs two by two, carrying an odd run
// over to the next round, until one run is left. Equal keys keep their
// relative order.
func MergeSort(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return nil
	}
	runs := make([][]Pair, len(pairs))
	for i := range pairs {
		runs[i] = pairs[i : i+1 : i+1]
	}
	for len(runs) > 1 {
		next := make([][]Pair, 0, (len(runs)+1)/2)
		for i := 0; i+1 < len(runs); i += 2 {
			next = append(next, merge(runs[i], runs[i+1]))
		}
		if len(runs)%2 == 1 {
			next = append(next, runs[len(runs)-1])
		}
		runs = next
	}
	return append([]Pair(nil), runs[0]...)
}

func merge(left, right []Pair) []Pair {
	ret := make([]Pair, 0, len(left)+len(right))
	for len(left) > 0 && len(right) > 0 {
		if right[0].Key < left[0].Key {
			ret = append(ret, right[0])
			right = right[1:]
			continue
		}
		ret = append(ret, left[0])
		left = left[1:]
	}
	ret = append(ret, left...)
	return append(ret, right...)
}

// Duplicates reports the first key repeated in sorted.
func Duplicates(sorted []Pair) error {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return NewError(DuplicateKey, sorted[i].Key, "map would contain duplicate keys")
		}
	}
	return nil
}
