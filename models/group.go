package models

// Group is a named set of usernames used to scope sender→receiver visibility.
// A group always contains its creator at the moment of creation; there is no
// owner concept afterwards, and any member may be the last to leave, which
// deletes the group.
//
// Uniqueness of GroupName and of the member set is scoped to the groups the
// acting user belongs to, not global. Two unrelated users may both have a
// group called "Family".
type Group struct {
	GroupName string   `json:"group_name"`
	Members   []string `json:"members"`
}

// HasMember reports whether username is in the group's member list.
func (g Group) HasMember(username string) bool {
	for _, m := range g.Members {
		if m == username {
			return true
		}
	}
	return false
}

// SameMembers reports whether the group's member set equals members,
// ignoring order and duplicates.
func (g Group) SameMembers(members []string) bool {
	set := make(map[string]struct{}, len(g.Members))
	for _, m := range g.Members {
		set[m] = struct{}{}
	}
	other := make(map[string]struct{}, len(members))
	for _, m := range members {
		other[m] = struct{}{}
	}
	if len(set) != len(other) {
		return false
	}
	for m := range other {
		if _, ok := set[m]; !ok {
			return false
		}
	}
	return true
}
