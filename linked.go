package Go_Linear

// Node is a single link of a chain. A Node is owned by exactly one thing: either the Node
// before it or the container header holding it as head, so chains never share or cycle.
// The zero value is a detached Node holding the zero value of T.
type Node[T any] struct {
	V  T
	Nx *Node[T]
}

// NewNode returns a detached Node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{V: v}
}

// Link makes nx the successor of u and returns u, so it can be used to prepend:
// head = NewNode(v).Link(head).
// Time: O(1); Space: O(1)
func (u *Node[T]) Link(nx *Node[T]) *Node[T] {
	u.Nx = nx
	return u
}

// Detach cuts u out of its chain and returns its former successor. After Detach, u holds no
// reference into the chain, so nothing it used to own stays reachable through it.
// Time: O(1); Space: O(1)
func (u *Node[T]) Detach() *Node[T] {
	nx := u.Nx
	u.Nx = nil
	return nx
}

// Walk calls f on u and every Node reachable from it, stopping early when f returns false.
// Time: O(n); Space: O(1)
func (u *Node[T]) Walk(f func(*Node[T]) bool) {
	for cur := u; cur != nil; cur = cur.Nx {
		if !f(cur) {
			return
		}
	}
}

// Len counts the Nodes reachable from u, including u. A nil Node has length 0.
// Time: O(n); Space: O(1)
func (u *Node[T]) Len() (n uint) {
	for cur := u; cur != nil; cur = cur.Nx {
		n++
	}
	return
}

// Last returns the final Node reachable from u, or nil if u is nil.
// Time: O(n); Space: O(1)
func (u *Node[T]) Last() *Node[T] {
	if u == nil {
		return nil
	}
	cur := u
	for cur.Nx != nil {
		cur = cur.Nx
	}
	return cur
}
