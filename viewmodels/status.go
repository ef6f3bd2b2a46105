package viewmodels

// Status is the account state shown as a badge in lists and detail pages.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// DeriveStatus combines the active and online flags of entities that have no
// status field of their own. A missing flag counts as false.
//
//	active  online  status
//	false   *       blocked
//	true    true    active
//	true    false   inactive
func DeriveStatus(isActive, isOnline *bool) Status {
	if !flag(isActive) {
		return StatusBlocked
	}
	if flag(isOnline) {
		return StatusActive
	}
	return StatusInactive
}

// accountStatus is used for accounts without an online flag (customers and
// admins). An explicit block wins; a missing isActive is not a block.
func accountStatus(isActive, isBlocked *bool) Status {
	if flag(isBlocked) {
		return StatusBlocked
	}
	if isActive != nil && !*isActive {
		return StatusBlocked
	}
	return StatusActive
}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusBlocked:
		return "Blocked"
	default:
		return Unknown
	}
}

// Tone is the badge colour used by the templates.
func (s Status) Tone() string {
	switch s {
	case StatusActive:
		return "success"
	case StatusInactive:
		return "muted"
	case StatusBlocked:
		return "danger"
	default:
		return "muted"
	}
}
