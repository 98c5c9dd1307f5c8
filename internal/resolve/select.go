package resolve

// SelectBest picks the installer archive with the highest build number among
// entries matching target and the OS class's tag and suffix.
//
// Entries are visited in the order given and directories are skipped. A
// candidate replaces the current best only when its build is strictly
// greater, so among equal builds the first one seen is kept.
//
// When nothing matches, SelectBest returns a nil entry and NoBuild.
func SelectBest(entries []Entry, target string, osClass OSClass) (Entry, int64) {
	osTag, suffix := osClass.OSTag(), osClass.ArchiveSuffix()

	var best Entry
	bestBuild := NoBuild
	for _, e := range entries {
		if e == nil || e.IsDir() {
			continue
		}

		c, ok := ParseCandidate(e.Name(), target)
		if !ok || !c.Matches(osTag, suffix) {
			continue
		}

		if build := int64(c.Build); build > bestBuild {
			best = e
			bestBuild = build
		}
	}

	return best, bestBuild
}
