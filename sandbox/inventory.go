package sandbox

// Inventory splits a file set into what the assembler writes for every
// project and what came from the request.
type Inventory struct {
	// UserPaths are the paths outside ReservedPaths, in set order.
	UserPaths []string `json:"user_paths" yaml:"user_paths"`
	// MissingReserved lists reserved paths the set lacks, typically because
	// an archive was exported with excludes.
	MissingReserved []string `json:"missing_reserved_paths" yaml:"missing_reserved_paths"`
}

// TakeInventory classifies the paths of files against ReservedPaths.
func TakeInventory(files *FileSet) Inventory {
	reserved := ReservedPaths()
	isReserved := make(map[string]bool, len(reserved))
	for _, p := range reserved {
		isReserved[p] = true
	}

	inv := Inventory{UserPaths: []string{}, MissingReserved: []string{}}
	for _, p := range files.Paths() {
		if !isReserved[p] {
			inv.UserPaths = append(inv.UserPaths, p)
		}
	}
	for _, p := range reserved {
		if _, ok := files.Get(p); !ok {
			inv.MissingReserved = append(inv.MissingReserved, p)
		}
	}
	return inv
}
