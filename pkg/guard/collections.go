package guard

// AgainstEmptySlice returns an EmptyCollectionError when s is nil or has
// no elements.
func AgainstEmptySlice[T any](name string, s []T) error {
	if len(s) == 0 {
		return &EmptyCollectionError{Param: name, Kind: "slice"}
	}
	return nil
}

// AgainstEmptyMap returns an EmptyCollectionError when m is nil or has
// no entries.
func AgainstEmptyMap[K comparable, V any](name string, m map[K]V) error {
	if len(m) == 0 {
		return &EmptyCollectionError{Param: name, Kind: "map"}
	}
	return nil
}
