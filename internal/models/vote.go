package models

// VoteKind is the closed set of counters a vote can touch. Every vote
// increments exactly one of the three.
type VoteKind int

const (
	VoteInteresting VoteKind = iota
	VoteMindblowing
	VoteFalse
)

// Column returns the database column the kind maps to.
func (k VoteKind) Column() string {
	switch k {
	case VoteInteresting:
		return "vote_interesting"
	case VoteMindblowing:
		return "vote_mindblowing"
	case VoteFalse:
		return "vote_false"
	}
	return ""
}

func (k VoteKind) String() string {
	switch k {
	case VoteInteresting:
		return "voteInteresting"
	case VoteMindblowing:
		return "voteMindblowing"
	case VoteFalse:
		return "voteFalse"
	}
	return "voteUnknown"
}

// Bump increments the kind's counter on a fact in place.
func (k VoteKind) Bump(f *Fact) {
	switch k {
	case VoteInteresting:
		f.VoteInteresting++
	case VoteMindblowing:
		f.VoteMindblowing++
	case VoteFalse:
		f.VoteFalse++
	}
}

// ParseVoteKind maps a route segment like "voteInteresting" back to its
// kind. The second return is false for anything outside the set.
func ParseVoteKind(s string) (VoteKind, bool) {
	switch s {
	case "voteInteresting":
		return VoteInteresting, true
	case "voteMindblowing":
		return VoteMindblowing, true
	case "voteFalse":
		return VoteFalse, true
	}
	return 0, false
}
