package channel

// DistrictOffset is the character offset of the district numeral within a
// channel name. It must be changed if the name structure changes.
const DistrictOffset = 2

// NoDistrict marks an unset district.
const NoDistrict = -1

// Districts holds the valid district numerals.
var Districts = []int{0, 1, 2, 3, 4, 5, 6, 7}

// ValidDistrict returns true when d is a valid district numeral.
func ValidDistrict(d int) bool {
	for _, v := range Districts {
		if v == d {
			return true
		}
	}
	return false
}

// DistrictRune returns the character at DistrictOffset of the given name.
func DistrictRune(name string) (rune, bool) {
	r := []rune(name)
	if len(r) <= DistrictOffset {
		return 0, false
	}
	return r[DistrictOffset], true
}

// NameDistrict returns the district numeral encoded in the name. The bool is
// false when the character at DistrictOffset is not a digit.
func NameDistrict(name string) (int, bool) {
	r, ok := DistrictRune(name)
	if !ok || r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}
