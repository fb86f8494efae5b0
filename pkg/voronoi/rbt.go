package voronoi

// beachLine is an intrusive red-black tree of arcs, threaded with prev/next
// links in left-to-right order. There is no stored key: the position of a
// new arc is decided by the caller from breakpoints at the current sweep y.
type beachLine struct {
	root *arc
	size int
}

// insertSuccessor links a right after node in the in-order sequence. A nil
// node inserts a as the leftmost arc.
func (t *beachLine) insertSuccessor(node, a *arc) {
	var parent *arc
	switch {
	case node != nil:
		a.prev = node
		a.next = node.next
		if node.next != nil {
			node.next.prev = a
		}
		node.next = a
		if node.right != nil {
			parent = t.first(node.right)
			parent.left = a
		} else {
			parent = node
			parent.right = a
		}
	case t.root != nil:
		parent = t.first(t.root)
		a.prev = nil
		a.next = parent
		parent.prev = a
		parent.left = a
	default:
		a.prev = nil
		a.next = nil
		t.root = a
	}
	a.left = nil
	a.right = nil
	a.parent = parent
	a.red = true
	t.size++
	t.insertFixup(a)
}

func (t *beachLine) insertFixup(node *arc) {
	parent := node.parent
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

// remove unlinks a from the tree and from the prev/next thread.
func (t *beachLine) remove(a *arc) {
	if a.next != nil {
		a.next.prev = a.prev
	}
	if a.prev != nil {
		a.prev.next = a.next
	}

	parent := a.parent
	left := a.left
	right := a.right

	var next *arc
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = t.first(right)
	}
	t.replaceChild(parent, a, next)

	var node *arc
	var wasRed bool
	if left != nil && right != nil {
		wasRed = next.red
		next.red = a.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = a.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		wasRed = a.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}

	a.parent, a.left, a.right = nil, nil, nil
	a.prev, a.next = nil, nil
	t.size--

	if wasRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}
	t.removeFixup(node, parent)
}

func (t *beachLine) removeFixup(node, parent *arc) {
	for node != t.root {
		var sibling *arc
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.right) {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.left) {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func isRed(a *arc) bool {
	return a != nil && a.red
}

func (t *beachLine) replaceChild(parent, old, child *arc) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
}

func (t *beachLine) rotateLeft(p *arc) {
	q := p.right
	t.replaceChild(p.parent, p, q)
	q.parent = p.parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *beachLine) rotateRight(p *arc) {
	q := p.left
	t.replaceChild(p.parent, p, q)
	q.parent = p.parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

func (t *beachLine) first(a *arc) *arc {
	for a.left != nil {
		a = a.left
	}
	return a
}

// leftmost returns the first arc of the beach line, or nil when empty.
func (t *beachLine) leftmost() *arc {
	if t.root == nil {
		return nil
	}
	return t.first(t.root)
}
