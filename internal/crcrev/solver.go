package crcrev

import "crcrev/internal/gf2"

// findInit folds every remaining working polynomial's constraint on
// the init register into one prefactorMod, tightening hull along the
// way whenever a file's constraint forces it. Returns ok = false the
// moment any file proves incompatible with the rest.
func findInit(initKnown *gf2.Poly, hull gf2.Poly, carriers []carrier) (prefactorMod, gf2.Poly, bool) {
	if hull.Deg() <= 0 {
		return emptyPrefactor(), hull, false
	}

	ret := newInitPrefactor(initKnown, hull)
	mp := newMemoPower(hull)

	for _, c := range carriers {
		mp.updateInitFac(c.Tag)

		fp, newHull, ok := newFilePrefactor(c.Poly, mp, hull)
		if !ok {
			return emptyPrefactor(), newHull, false
		}
		hull = newHull

		merged, mergedHull, ok := ret.merge(fp, hull)
		if !ok {
			return emptyPrefactor(), mergedHull, false
		}
		ret = merged
		hull = mergedHull
	}

	return ret, hull, true
}
