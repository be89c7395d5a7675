package entities

// Outcome tags how a role resolution concluded.
type Outcome string

const (
	// OutcomeFound: an existing directory record supplied the role.
	OutcomeFound Outcome = "found"
	// OutcomeCreated: no record existed; one was provisioned with role USER.
	OutcomeCreated Outcome = "created"
	// OutcomeDenied: resolution failed or the subject is anonymous; the
	// caller is treated as non-privileged.
	OutcomeDenied Outcome = "denied"
)

// Resolution is the explicit result of resolving a subject's role.
// Denied resolutions always carry RoleUser so callers cannot accidentally
// read an elevated role out of a failed lookup.
type Resolution struct {
	Outcome Outcome
	Role    Role
}

// Denied is the fail-closed resolution.
func Denied() Resolution {
	return Resolution{Outcome: OutcomeDenied, Role: RoleUser}
}

// Authenticated reports whether the resolution is backed by a directory record.
func (r Resolution) Authenticated() bool {
	return r.Outcome == OutcomeFound || r.Outcome == OutcomeCreated
}

// Satisfies reports whether the resolved role meets the minimum required role.
// Denied resolutions never satisfy anything above USER.
func (r Resolution) Satisfies(min Role) bool {
	if !r.Authenticated() {
		return RoleUser.Rank() >= min.Rank()
	}
	return r.Role.Rank() >= min.Rank()
}

// IsAdmin is a convenience for the most common privilege check.
func (r Resolution) IsAdmin() bool {
	return r.Authenticated() && r.Role == RoleAdmin
}
