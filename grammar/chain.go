package grammar

// chain is a singly-linked sequence of rules built by appending to a tail.
// The "default" pointer on each rule doubles as the intrusive next-pointer,
// so chain itself only needs to remember the head and tail.
type chain struct {
	head *rule
	tail *rule
}

// pushBack appends r to the chain, linking the previous tail's default to
// it, and returns r for convenience.
func (c *chain) pushBack(r *rule) *rule {
	if c.head == nil {
		c.head = r
		c.tail = r
		return r
	}

	c.tail.def = r
	c.tail = r
	return r
}

// front returns the first rule of the chain, or nil if the chain is empty.
func (c *chain) front() *rule {
	return c.head
}

// back returns the last rule of the chain, or nil if the chain is empty.
func (c *chain) back() *rule {
	return c.tail
}

// empty reports whether the chain has no rules.
func (c *chain) empty() bool {
	return c.head == nil
}

// append concatenates other onto the end of c, leaving other empty.
func (c *chain) append(other *chain) {
	if other.empty() {
		return
	}

	if c.empty() {
		c.head = other.head
		c.tail = other.tail
	} else {
		c.tail.def = other.head
		c.tail = other.tail
	}

	other.head = nil
	other.tail = nil
}

// release hands back the chain's head and clears the chain. Transfer is
// one-shot: after release the chain is empty and owns nothing.
func (c *chain) release() *rule {
	r := c.head
	c.head = nil
	c.tail = nil
	return r
}
