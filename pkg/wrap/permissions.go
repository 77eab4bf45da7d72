package wrap

// Permission is a bitmap of the operations a Collection allows. The
// collection records it for callers; it does not enforce it.
type Permission uint8

const (
	PermRead Permission = 1 << iota
	PermWrite
	PermDelete

	PermAll = PermRead | PermWrite | PermDelete
)

// SetPermissions replaces the permission bitmap.
func (c *Collection) SetPermissions(read, write, remove bool) *Collection {
	var p Permission
	if read {
		p |= PermRead
	}
	if write {
		p |= PermWrite
	}
	if remove {
		p |= PermDelete
	}
	c.perms = p
	return c
}

// Permissions returns the permission bitmap.
func (c *Collection) Permissions() Permission { return c.perms }

// Permitted reports whether every bit of p is allowed.
func (c *Collection) Permitted(p Permission) bool {
	return c.perms&p == p
}
