package season

import "strings"

// Key identifies one Premier League season, or the AllTime aggregate view.
type Key string

// AllTime is the synthetic key for the union of every loaded season.
const AllTime Key = "All Time"

const (
	S2017 Key = "2017/2018"
	S2018 Key = "2018/2019"
	S2019 Key = "2019/2020"
	S2020 Key = "2020/2021"
	S2021 Key = "2021/2022"
	S2022 Key = "2022/2023"
	S2023 Key = "2023/2024"
	S2024 Key = "2024/2025"
)

var known = []Key{S2017, S2018, S2019, S2020, S2021, S2022, S2023, S2024}

// Known returns the season keys in chronological order, oldest first.
func Known() []Key {
	out := make([]Key, len(known))
	copy(out, known)
	return out
}

func IsKnown(k Key) bool {
	for _, candidate := range known {
		if candidate == k {
			return true
		}
	}
	return false
}

// Resolve maps a requested key to a servable one. AllTime and known season
// keys pass through; anything else falls back to the given default. An
// unrecognized key is never an error.
func Resolve(requested, fallback Key) Key {
	if requested == AllTime || IsKnown(requested) {
		return requested
	}
	return fallback
}

// FileToken returns the season label as used in dataset file names,
// e.g. "2017/2018" -> "2017_2018".
func (k Key) FileToken() string {
	return strings.ReplaceAll(string(k), "/", "_")
}
